package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gofiber-todo/domain/services"
	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"
)

// respondError แปลง error ของ service เป็น HTTP response
func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := services.IsValidationError(err); ok {
		return utils.ValidationErrorResponse(c, ve.Fields)
	}

	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, services.ErrUserNotFound):
		return utils.NotFoundResponse(c, "User not found")
	case errors.Is(err, services.ErrUnauthenticated):
		return utils.RedirectToLogin(c)
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.ErrCodeUnauthorized,
			"Please enter a correct username and password. Note that both fields may be case-sensitive.", nil)
	case errors.Is(err, services.ErrAccountDisabled):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.ErrCodeUnauthorized, "This account is inactive.", nil)
	default:
		logger.ErrorContext(c.UserContext(), "Request failed", "path", c.Path(), "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
