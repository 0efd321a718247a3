package persistence

import (
	"errors"

	"gorm.io/gorm"

	"gofiber-todo/domain/repositories"
)

// translate แปลง error ของ gorm เป็น error ของ domain
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repositories.ErrDuplicate
	default:
		return err
	}
}
