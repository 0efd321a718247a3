package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gofiber-todo/application/policy"
	"gofiber-todo/application/serviceimpl"
	"gofiber-todo/domain/dto"
	"gofiber-todo/domain/services"
	"gofiber-todo/infrastructure/memory"
	"gofiber-todo/infrastructure/persistence"
	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"
)

func newTestRuntime(t *testing.T) *runtime {
	t.Helper()

	logCfg := logger.DefaultConfig()
	logCfg.Output = "discard"
	log, err := logger.New(logCfg)
	require.NoError(t, err)

	db, err := persistence.NewDatabase(persistence.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, log)
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	t.Cleanup(func() { _ = persistence.Close(db) })

	signer := utils.NewSessionSigner("secret", "test", time.Hour)
	return &runtime{
		db: db,
		users: serviceimpl.NewUserService(persistence.NewUserRepository(db), signer, memory.NewSessionRevoker(),
			serviceimpl.WithPasswordCost(bcrypt.MinCost)),
		tasks: serviceimpl.NewTaskService(persistence.NewTaskRepository(db), policy.NewTaskAccessPolicy()),
	}
}

func run(t *testing.T, rt *runtime, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(func() (*runtime, func(), error) { return rt, nil, nil })
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCreateUserAndListTasks(t *testing.T) {
	rt := newTestRuntime(t)

	out, err := run(t, rt, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	out, err = run(t, rt, "createuser", "--username", "alice", "--password", "s3cret-pass")
	require.NoError(t, err)
	assert.Contains(t, out, "created user alice")

	user, err := rt.users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	_, err = rt.tasks.CreateTask(context.Background(), user.ID, &dto.CreateTaskRequest{Title: "Buy Milk"})
	require.NoError(t, err)
	_, err = rt.tasks.CreateTask(context.Background(), user.ID, &dto.CreateTaskRequest{Title: "Done", Complete: true})
	require.NoError(t, err)

	out, err = run(t, rt, "tasks", "--username", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy Milk")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "1 incomplete")
}

func TestCreateUserRejectsWeakPassword(t *testing.T) {
	rt := newTestRuntime(t)

	_, err := run(t, rt, "createuser", "--username", "alice", "--password", "12345678")
	_, ok := services.IsValidationError(err)
	assert.True(t, ok)
}

func TestDeleteUserCascades(t *testing.T) {
	rt := newTestRuntime(t)

	_, err := run(t, rt, "createuser", "--username", "alice", "--password", "s3cret-pass")
	require.NoError(t, err)
	user, err := rt.users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	_, err = rt.tasks.CreateTask(context.Background(), user.ID, &dto.CreateTaskRequest{Title: "x"})
	require.NoError(t, err)

	out, err := run(t, rt, "deleteuser", "--username", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted user alice")

	_, err = run(t, rt, "tasks", "--username", "alice")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestRequiredFlags(t *testing.T) {
	rt := newTestRuntime(t)
	_, err := run(t, rt, "createuser", "--username", "alice")
	assert.Error(t, err)
}
