package services

import (
	"context"

	"github.com/google/uuid"

	"gofiber-todo/domain/dto"
	"gofiber-todo/domain/models"
)

// TaskService ทุก method รับ userID ของผู้เรียกแบบ explicit
// task ของคนอื่นจะถูกมองว่าไม่มีอยู่ (ErrTaskNotFound)
type TaskService interface {
	// ListTasks คืน tasks ของ user (กรองด้วย search) และจำนวน task ที่ยังไม่เสร็จก่อนกรอง
	ListTasks(ctx context.Context, userID uuid.UUID, search string) ([]*models.Task, int64, error)
	GetTask(ctx context.Context, userID uuid.UUID, taskID uint) (*models.Task, error)
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, userID uuid.UUID, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	RequestDelete(ctx context.Context, userID uuid.UUID, taskID uint) (*models.Task, error)
	ConfirmDelete(ctx context.Context, userID uuid.UUID, taskID uint) error
}
