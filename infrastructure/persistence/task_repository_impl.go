package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gofiber-todo/domain/models"
	"gofiber-todo/domain/repositories"
)

// incomplete ก่อน แล้วตาม id
const taskOrder = "complete ASC, id ASC"

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return repositories.ErrEmptyTitle
	}
	return translate(r.db.WithContext(ctx).Create(task).Error)
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Search != "" {
		// sqlite: LOWER() fold ได้แค่ ASCII ("äpfel" ไม่เจอ "Äpfel"); postgres fold unicode ครบ
		query = query.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(filter.Search)+"%")
	}

	var tasks []*models.Task
	err := query.Order(taskOrder).Find(&tasks).Error
	return tasks, translate(err)
}

func (r *TaskRepositoryImpl) CountIncomplete(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_id = ? AND complete = ?", userID, false).
		Count(&count).Error
	return count, translate(err)
}

// Update เขียนเฉพาะ title/description/complete; user_id กับ created_at ไม่ถูกแตะ
func (r *TaskRepositoryImpl) Update(ctx context.Context, id uint, task *models.Task) error {
	result := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       task.Title,
		"description": task.Description,
		"complete":    task.Complete,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Task{})
	return result.RowsAffected, translate(result.Error)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike ให้ % และ _ ใน search เป็นตัวอักษรธรรมดา
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
