package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gofiber-todo/domain/models"
	"gofiber-todo/domain/repositories"
)

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "x", IsActive: true}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func createTask(t *testing.T, repo repositories.TaskRepository, owner uuid.UUID, title string, complete bool) *models.Task {
	t.Helper()
	task := &models.Task{UserID: &owner, Title: title, Complete: complete}
	require.NoError(t, repo.Create(context.Background(), task))
	return task
}

func titles(tasks []*models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestTaskRepository_ListScopedAndOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	createTask(t, repo, alice.ID, "done one", true)
	createTask(t, repo, alice.ID, "first", false)
	createTask(t, repo, bob.ID, "bob task", false)
	createTask(t, repo, alice.ID, "second", false)

	tasks, err := repo.List(ctx, repositories.TaskFilter{UserID: &alice.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "done one"}, titles(tasks))

	all, err := repo.List(ctx, repositories.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestTaskRepository_SearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	createTask(t, repo, alice.ID, "Buy Milk", false)
	createTask(t, repo, alice.ID, "100% done_ish", false)

	for _, q := range []string{"milk", "MILK", "Milk", "ilk"} {
		tasks, err := repo.List(ctx, repositories.TaskFilter{UserID: &alice.ID, Search: q})
		require.NoError(t, err)
		assert.Equal(t, []string{"Buy Milk"}, titles(tasks), q)
	}

	tasks, err := repo.List(ctx, repositories.TaskFilter{UserID: &alice.ID, Search: "eggs"})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// wildcard ใน search เป็นตัวอักษรธรรมดา
	tasks, err = repo.List(ctx, repositories.TaskFilter{UserID: &alice.ID, Search: "%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% done_ish"}, titles(tasks))

	tasks, err = repo.List(ctx, repositories.TaskFilter{UserID: &alice.ID, Search: "_"})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% done_ish"}, titles(tasks))
}

func TestTaskRepository_SearchNonASCIITitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	createTask(t, repo, alice.ID, "Äpfel kaufen", false)

	for _, q := range []string{"Äpfel", "ÄPFEL", "KAUFEN", "pfel"} {
		tasks, err := repo.List(ctx, repositories.TaskFilter{UserID: &alice.ID, Search: q})
		require.NoError(t, err)
		assert.Equal(t, []string{"Äpfel kaufen"}, titles(tasks), q)
	}
}

func TestTaskRepository_CountIncomplete(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createTask(t, repo, alice.ID, "a", false)
	createTask(t, repo, alice.ID, "b", true)
	createTask(t, repo, bob.ID, "c", false)

	count, err := repo.CountIncomplete(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTaskRepository_UpdateKeepsOwnerAndCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	task := createTask(t, repo, alice.ID, "old", false)
	before, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)

	other := uuid.New()
	desc := "details"
	require.NoError(t, repo.Update(ctx, task.ID, &models.Task{
		UserID:      &other,
		Title:       "new",
		Description: &desc,
		Complete:    true,
	}))

	after, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, after.ID)
	assert.Equal(t, "new", after.Title)
	require.NotNil(t, after.Description)
	assert.Equal(t, "details", *after.Description)
	assert.True(t, after.Complete)
	assert.Equal(t, alice.ID, *after.UserID)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))

	err = repo.Update(ctx, 9999, &models.Task{Title: "x"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestTaskRepository_DescriptionNullVsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	empty := ""
	withEmpty := &models.Task{UserID: &alice.ID, Title: "empty", Description: &empty}
	require.NoError(t, repo.Create(ctx, withEmpty))
	withNull := createTask(t, repo, alice.ID, "null", false)

	got, err := repo.GetByID(ctx, withEmpty.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "", *got.Description)

	got, err = repo.GetByID(ctx, withNull.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
}

func TestTaskRepository_DeleteAndIDsNotReused(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	first := createTask(t, repo, alice.ID, "first", false)
	second := createTask(t, repo, alice.ID, "second", false)

	require.NoError(t, repo.Delete(ctx, second.ID))
	assert.ErrorIs(t, repo.Delete(ctx, second.ID), repositories.ErrNotFound)

	_, err := repo.GetByID(ctx, second.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	third := createTask(t, repo, alice.ID, "third", false)
	assert.Greater(t, third.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestTaskRepository_CreateRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	alice := createUser(t, db, "alice")

	err := repo.Create(context.Background(), &models.Task{UserID: &alice.ID, Title: "   "})
	assert.ErrorIs(t, err, repositories.ErrEmptyTitle)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}
