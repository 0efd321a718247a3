package repositories

import "errors"

var (
	// ErrNotFound คืนจาก repository ทุกตัวเมื่อไม่พบ record
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate ชน unique constraint
	ErrDuplicate = errors.New("duplicate record")

	ErrEmptyTitle = errors.New("task title is required")
)
