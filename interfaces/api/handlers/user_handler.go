package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gofiber-todo/domain/dto"
	"gofiber-todo/domain/services"
	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
	cookies     sessionCookies
}

func NewUserHandler(userService services.UserService, cookies sessionCookies) *UserHandler {
	return &UserHandler{
		userService: userService,
		cookies:     cookies,
	}
}

func (h *UserHandler) GetAccount(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

// DeleteAccount ลบ user (tasks ถูกลบตาม) แล้วปิด session ปัจจุบัน
func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	if err := h.userService.DeleteUser(ctx, user.ID); err != nil {
		return respondError(c, err)
	}

	if err := h.userService.Logout(ctx, user); err != nil {
		logger.WarnContext(ctx, "Failed to revoke session of deleted user", "user_id", user.ID, "error", err)
	}

	h.cookies.clear(c)
	return utils.SuccessOrRedirect(c, fiber.StatusOK, dto.LogoutResponse{Message: "Account deleted"}, utils.LoginPath)
}
