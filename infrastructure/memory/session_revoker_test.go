package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRevoker_RevokeUntilExpiry(t *testing.T) {
	r := NewSessionRevoker()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	ctx := context.Background()

	revoked, err := r.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "s1", time.Hour))
	revoked, err = r.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, err = r.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, revoked)

	// revoke ครั้งถัดไป purge entry เก่าออก
	require.NoError(t, r.Revoke(ctx, "s2", time.Hour))
	assert.Equal(t, 1, r.Len())
}
