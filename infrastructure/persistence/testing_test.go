package persistence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gofiber-todo/pkg/logger"
)

// newTestDB sqlite in-memory แยกต่อ test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := logger.DefaultConfig()
	cfg.Output = "discard"
	log, err := logger.New(cfg)
	require.NoError(t, err)

	db, err := NewDatabase(DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, log)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() { _ = Close(db) })
	return db
}
