package repositories

import (
	"context"

	"github.com/google/uuid"

	"gofiber-todo/domain/models"
)

// TaskFilter เงื่อนไขของ List
// UserID nil = ไม่จำกัด owner (ใช้เฉพาะงาน admin/CLI)
type TaskFilter struct {
	UserID *uuid.UUID
	Search string // case-insensitive substring ของ title
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	// List เรียง incomplete ก่อน complete เสมอ
	List(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	CountIncomplete(ctx context.Context, userID uuid.UUID) (int64, error)
	// Update เขียนเฉพาะ title, description, complete
	Update(ctx context.Context, id uint, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
