// Package policy ตัดสินว่า user คนไหนเห็น/แก้ task ไหนได้
package policy

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gofiber-todo/domain/models"
	"gofiber-todo/domain/repositories"
	"gofiber-todo/domain/services"
)

// ErrAccessDenied task มีอยู่แต่ไม่ใช่ของ actor
var ErrAccessDenied = errors.New("access denied")

type Operation int

const (
	OpView Operation = iota
	OpUpdate
	OpDelete
)

func (op Operation) String() string {
	switch op {
	case OpView:
		return "view"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

// TaskAccessPolicy owner เท่านั้นที่เห็นและแก้ task ได้
// task ที่ไม่มี owner ไม่มีใครเห็น
type TaskAccessPolicy struct{}

func NewTaskAccessPolicy() *TaskAccessPolicy {
	return &TaskAccessPolicy{}
}

// Authorize ใช้กับ detail, update และ delete
func (p *TaskAccessPolicy) Authorize(actor uuid.UUID, op Operation, task *models.Task) error {
	if actor == uuid.Nil {
		return services.ErrUnauthenticated
	}
	if task == nil || !task.IsOwnedBy(actor) {
		return fmt.Errorf("%s task: %w", op, ErrAccessDenied)
	}
	return nil
}

// ListScope filter สำหรับหน้า list: เฉพาะ task ของ actor
func (p *TaskAccessPolicy) ListScope(actor uuid.UUID, search string) (repositories.TaskFilter, error) {
	if actor == uuid.Nil {
		return repositories.TaskFilter{}, services.ErrUnauthenticated
	}
	owner := actor
	return repositories.TaskFilter{UserID: &owner, Search: search}, nil
}

// StampOwner ตั้ง owner เป็น actor เสมอ ไม่สนค่าที่ client ส่งมา
func (p *TaskAccessPolicy) StampOwner(actor uuid.UUID, task *models.Task) error {
	if actor == uuid.Nil {
		return services.ErrUnauthenticated
	}
	owner := actor
	task.UserID = &owner
	return nil
}
