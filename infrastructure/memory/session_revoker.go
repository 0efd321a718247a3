// Package memory เก็บ state ไว้ใน process (ใช้เมื่อไม่มี Redis)
package memory

import (
	"context"
	"sync"
	"time"

	"gofiber-todo/domain/ports"
)

// SessionRevoker deny-list ใน memory; ใช้ได้กับ instance เดียวเท่านั้น
type SessionRevoker struct {
	mu      sync.RWMutex
	revoked map[string]time.Time // session id -> หมดอายุเมื่อ
	now     func() time.Time
}

func NewSessionRevoker() *SessionRevoker {
	return &SessionRevoker{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

var _ ports.SessionRevoker = (*SessionRevoker)(nil)

func (r *SessionRevoker) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.revoked[sessionID] = now.Add(ttl)
	r.purgeLocked(now)
	return nil
}

func (r *SessionRevoker) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	expiresAt, ok := r.revoked[sessionID]
	if !ok {
		return false, nil
	}
	return r.now().Before(expiresAt), nil
}

// Len จำนวน entry ที่ยังไม่ถูก purge
func (r *SessionRevoker) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.revoked)
}

// purgeLocked ลบ entry ที่ token หมดอายุไปแล้ว
func (r *SessionRevoker) purgeLocked(now time.Time) {
	for id, expiresAt := range r.revoked {
		if !now.Before(expiresAt) {
			delete(r.revoked, id)
		}
	}
}
