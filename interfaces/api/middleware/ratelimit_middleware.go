package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"
)

// LoginRateLimit จำกัดจำนวน POST ต่อ IP ใน window (กัน brute force รหัสผ่าน)
func LoginRateLimit(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "login:" + c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			return max <= 0 || c.Method() != fiber.MethodPost
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.WarnContext(c.UserContext(), "Login rate limit reached", "ip", c.IP())
			return utils.TooManyRequestsResponse(c)
		},
	})
}
