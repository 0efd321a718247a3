package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofiber-todo/pkg/config"
)

// ต้องมี Redis จริง: REDIS_TEST_URL=redis://localhost:6379/15
func newTestClient(t *testing.T) *Client {
	t.Helper()
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	client, err := NewClient(&config.RedisConfig{URL: url})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSessionRevoker(t *testing.T) {
	client := newTestClient(t)
	revoker := NewSessionRevoker(client)
	ctx := context.Background()
	sessionID := uuid.NewString()
	t.Cleanup(func() { _ = client.Del(ctx, revokedKeyPrefix+sessionID) })

	revoked, err := revoker.IsRevoked(ctx, sessionID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, revoker.Revoke(ctx, sessionID, time.Minute))

	revoked, err = revoker.IsRevoked(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(&config.RedisConfig{URL: "not a url"})
	assert.Error(t, err)
}
