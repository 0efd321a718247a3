package serviceimpl

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gofiber-todo/application/policy"
	"gofiber-todo/domain/repositories"
	"gofiber-todo/domain/services"
	"gofiber-todo/infrastructure/memory"
	"gofiber-todo/infrastructure/persistence"
	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"
)

type fixture struct {
	users   repositories.UserRepository
	tasks   repositories.TaskRepository
	userSvc services.UserService
	taskSvc services.TaskService
	signer  *utils.SessionSigner
	revoker *memory.SessionRevoker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := logger.DefaultConfig()
	cfg.Output = "discard"
	log, err := logger.New(cfg)
	require.NoError(t, err)

	db, err := persistence.NewDatabase(persistence.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, log)
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	t.Cleanup(func() { _ = persistence.Close(db) })

	f := &fixture{
		users:   persistence.NewUserRepository(db),
		tasks:   persistence.NewTaskRepository(db),
		signer:  utils.NewSessionSigner("test-secret", "test", time.Hour),
		revoker: memory.NewSessionRevoker(),
	}
	f.userSvc = NewUserService(f.users, f.signer, f.revoker, WithPasswordCost(bcrypt.MinCost))
	f.taskSvc = NewTaskService(f.tasks, policy.NewTaskAccessPolicy())
	return f
}
