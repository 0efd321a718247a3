package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gofiber-todo/pkg/logger"
)

const (
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 128
)

// RequestIDMiddleware ใช้ X-Request-ID ของ client ถ้าปลอดภัยพอจะลง log ได้
// ไม่งั้นสร้างใหม่ แล้วผูกกับ UserContext ให้ logger.*Context ใช้ต่อ
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDHeader, requestID)
		c.SetUserContext(logger.ContextWithRequestID(c.UserContext(), requestID))

		return c.Next()
	}
}

// validRequestID รับเฉพาะ [A-Za-z0-9._-] กัน log injection
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		ch := id[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-' || ch == '_' || ch == '.':
		default:
			return false
		}
	}
	return true
}
