package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID  `gorm:"primaryKey;type:uuid"`
	Username  string     `gorm:"size:150;uniqueIndex;not null"`
	Email     string     `gorm:"size:254"`
	Password  string     `gorm:"not null"` // bcrypt hash
	IsActive  bool       `gorm:"not null"`
	LastLogin *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate สร้าง UUID ฝั่ง app (sqlite ไม่มี gen_random_uuid)
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
