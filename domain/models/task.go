package models

import (
	"time"

	"github.com/google/uuid"
)

// Task คือ to-do item ของ user หนึ่งคน
// UserID เป็น nil ได้ (ยังไม่มีเจ้าของ) แต่ถ้ามีแล้วจะไม่ถูกเปลี่ยน
type Task struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	User        *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string     `gorm:"size:200;not null"`
	Description *string    `gorm:"type:text"`
	Complete    bool       `gorm:"not null;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// IsOwnedBy true เมื่อ task มีเจ้าของและเป็น userID
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID != nil && *t.UserID == userID && userID != uuid.Nil
}
