package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"gofiber-todo/application/policy"
	"gofiber-todo/domain/dto"
	"gofiber-todo/domain/models"
	"gofiber-todo/domain/repositories"
	"gofiber-todo/domain/services"
	"gofiber-todo/pkg/logger"
)

const maxTitleLength = 200

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	policy   *policy.TaskAccessPolicy
}

func NewTaskService(taskRepo repositories.TaskRepository, accessPolicy *policy.TaskAccessPolicy) services.TaskService {
	if accessPolicy == nil {
		accessPolicy = policy.NewTaskAccessPolicy()
	}
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		policy:   accessPolicy,
	}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID, search string) ([]*models.Task, int64, error) {
	filter, err := s.policy.ListScope(userID, strings.TrimSpace(search))
	if err != nil {
		return nil, 0, err
	}

	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, 0, err
	}

	// นับก่อน filter search
	count, err := s.taskRepo.CountIncomplete(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count incomplete tasks", "user_id", userID, "error", err)
		return nil, 0, err
	}

	return tasks, count, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID uuid.UUID, taskID uint) (*models.Task, error) {
	return s.load(ctx, userID, taskID, policy.OpView)
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	title, err := cleanTitle(req.Title)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       title,
		Description: req.Description,
		Complete:    req.Complete,
	}
	if err := s.policy.StampOwner(userID, task); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID uuid.UUID, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.load(ctx, userID, taskID, policy.OpUpdate)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title, err := cleanTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	switch {
	case req.ClearDescription:
		task.Description = nil
	case req.Description != nil:
		task.Description = req.Description
	}
	if req.Complete != nil {
		task.Complete = *req.Complete
	}

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	updated, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID, "complete", updated.Complete)
	return updated, nil
}

// RequestDelete ขั้นแรก: คืน task ให้ผู้ใช้ยืนยัน ยังไม่ลบ
func (s *TaskServiceImpl) RequestDelete(ctx context.Context, userID uuid.UUID, taskID uint) (*models.Task, error) {
	return s.load(ctx, userID, taskID, policy.OpDelete)
}

func (s *TaskServiceImpl) ConfirmDelete(ctx context.Context, userID uuid.UUID, taskID uint) error {
	if _, err := s.load(ctx, userID, taskID, policy.OpDelete); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	return nil
}

// load ดึง task แล้วผ่าน policy; task ของคนอื่นตอบเหมือนไม่มี
func (s *TaskServiceImpl) load(ctx context.Context, userID uuid.UUID, taskID uint, op policy.Operation) (*models.Task, error) {
	if userID == uuid.Nil {
		return nil, services.ErrUnauthenticated
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to get task", "task_id", taskID, "error", err)
		return nil, err
	}

	if err := s.policy.Authorize(userID, op, task); err != nil {
		if errors.Is(err, policy.ErrAccessDenied) {
			logger.WarnContext(ctx, "Task access denied", "task_id", taskID, "user_id", userID, "operation", op.String())
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

func cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", services.NewValidationError("title", "This field is required.")
	}
	if len([]rune(title)) > maxTitleLength {
		return "", services.NewValidationError("title", "Ensure this value has at most 200 characters.")
	}
	return title, nil
}
