package ports

import (
	"context"
	"time"
)

// SessionRevoker deny-list ของ session id ที่ logout แล้ว
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
