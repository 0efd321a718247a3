package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"gofiber-todo/domain/dto"
	"gofiber-todo/domain/models"
	"gofiber-todo/domain/services"
	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
	cookies     sessionCookies
}

func NewAuthHandler(userService services.UserService, cookies sessionCookies) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		cookies:     cookies,
	}
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	form := formDescriptor(c, "login", utils.LoginPath, "username", "password", "next")
	if next := safeNext(c.Query("next")); next != "" {
		form.Action = utils.LoginPath + "?next=" + url.QueryEscape(next)
	}
	return utils.SuccessResponse(c, form)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return respondError(c, err)
	}

	return h.startSession(c, fiber.StatusOK, token, user)
}

func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, formDescriptor(c, "register", "/register/", "username", "password1", "password2"))
}

// Register สมัครแล้ว login ให้ทันที
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return respondError(c, err)
	}

	token, err := h.userService.IssueSession(ctx, user)
	if err != nil {
		return respondError(c, err)
	}

	return h.startSession(c, fiber.StatusCreated, token, user)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.RedirectToLogin(c)
	}

	if err := h.userService.Logout(ctx, user); err != nil {
		return respondError(c, err)
	}

	h.cookies.clear(c)
	return utils.SuccessOrRedirect(c, fiber.StatusOK, dto.LogoutResponse{Message: "Logged out"}, utils.LoginPath)
}

func (h *AuthHandler) startSession(c *fiber.Ctx, status int, token *utils.SessionToken, user *models.User) error {
	h.cookies.set(c, token)

	next := safeNext(c.Query("next"))
	if next == "" {
		next = safeNext(c.FormValue("next"))
	}
	if next == "" {
		next = utils.ListPath
	}

	return utils.SuccessOrRedirect(c, status, dto.LoginResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.Unix(),
		User:      *dto.UserToUserResponse(user),
	}, next)
}
