package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskRequest ไม่มี field owner โดยตั้งใจ: owner มาจาก session เสมอ
type CreateTaskRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,max=200"`
	Description *string `json:"description" form:"description"`
	Complete    bool    `json:"complete" form:"complete"`
}

// UpdateTaskRequest field ที่เป็น nil = ไม่เปลี่ยน
// ClearDescription = client ส่ง "description": null มาตรงๆ (ล้างเป็น NULL)
type UpdateTaskRequest struct {
	Title            *string `json:"title" form:"title" validate:"omitempty,min=1,max=200"`
	Description      *string `json:"description" form:"description"`
	Complete         *bool   `json:"complete" form:"complete"`
	ClearDescription bool    `json:"-" form:"-"`
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Complete    bool       `json:"complete"`
	UserID      *uuid.UUID `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskListResponse ข้อมูลหน้า list (task_list + task_count + greeting + search_query)
type TaskListResponse struct {
	Tasks           []TaskResponse `json:"tasks"`
	IncompleteCount int64          `json:"incompleteCount"`
	Greeting        string         `json:"greeting"`
	Search          string         `json:"search"`
}

// EditTaskResponse ข้อมูลหน้าแก้ไข task
type EditTaskResponse struct {
	Task TaskResponse   `json:"task"`
	Form FormDescriptor `json:"form"`
}

// DeleteConfirmationResponse ขั้นแรกของการลบ: แสดง task ให้ยืนยัน
type DeleteConfirmationResponse struct {
	Task    TaskResponse   `json:"task"`
	Confirm string         `json:"confirm"`
	Form    FormDescriptor `json:"form"`
}

type DeleteTaskResponse struct {
	ID      uint `json:"id"`
	Deleted bool `json:"deleted"`
}
