package redis

import (
	"context"
	"time"

	"gofiber-todo/domain/ports"
)

const revokedKeyPrefix = "session:revoked:"

// SessionRevoker deny-list ของ session id บน Redis (key หมดอายุพร้อม token)
type SessionRevoker struct {
	client *Client
}

func NewSessionRevoker(client *Client) ports.SessionRevoker {
	return &SessionRevoker{client: client}
}

func (r *SessionRevoker) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return r.client.Set(ctx, revokedKeyPrefix+sessionID, "1", ttl)
}

func (r *SessionRevoker) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	return r.client.Exists(ctx, revokedKeyPrefix+sessionID)
}
