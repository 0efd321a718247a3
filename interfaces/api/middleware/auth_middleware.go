package middleware

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"gofiber-todo/domain/ports"
	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"
)

var (
	errSessionRevoked = errors.New("session revoked")

	// errRevocationCheck deny-list ใช้ไม่ได้ (เช่น redis ล่ม) ไม่ใช่ปัญหาของ token
	errRevocationCheck = errors.New("session revocation check failed")
)

// SessionAuth อ่าน session จาก Authorization: Bearer หรือ cookie
type SessionAuth struct {
	signer     *utils.SessionSigner
	revoker    ports.SessionRevoker // nil = ไม่เช็ค deny-list
	cookieName string
}

func NewSessionAuth(signer *utils.SessionSigner, revoker ports.SessionRevoker, cookieName string) *SessionAuth {
	return &SessionAuth{signer: signer, revoker: revoker, cookieName: cookieName}
}

func (a *SessionAuth) CookieName() string {
	return a.cookieName
}

// Authenticated ต้องมี session; ไม่มีจะ redirect ไปหน้า login พร้อม ?next=
// ถ้าส่ง Bearer token มาแต่ใช้ไม่ได้ ตอบ 401 แทน
func (a *SessionAuth) Authenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx, err := a.resolve(c)
		if err != nil {
			if errors.Is(err, errRevocationCheck) {
				return utils.InternalServerErrorResponse(c)
			}
			if c.Get(fiber.HeaderAuthorization) != "" {
				switch {
				case errors.Is(err, utils.ErrExpiredToken):
					return utils.UnauthorizedResponse(c, "Token has expired")
				case errors.Is(err, errSessionRevoked):
					return utils.UnauthorizedResponse(c, "Session has been logged out")
				default:
					return utils.UnauthorizedResponse(c, "Invalid token")
				}
			}
			return utils.RedirectToLogin(c)
		}

		a.attach(c, userCtx)
		return c.Next()
	}
}

// Optional ใส่ user ถ้ามี session ที่ใช้ได้ ไม่บังคับ
func (a *SessionAuth) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userCtx, err := a.resolve(c); err == nil {
			a.attach(c, userCtx)
		}
		return c.Next()
	}
}

// RedirectIfAuthenticated หน้า login/register: login อยู่แล้วให้ไปหน้า list
func (a *SessionAuth) RedirectIfAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := a.resolve(c); err == nil {
			return c.Redirect(utils.ListPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

func (a *SessionAuth) resolve(c *fiber.Ctx) (*utils.UserContext, error) {
	token := utils.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		token = c.Cookies(a.cookieName)
	}
	if token == "" {
		return nil, utils.ErrMissingToken
	}

	userCtx, err := a.signer.Validate(token)
	if err != nil {
		logger.DebugContext(c.UserContext(), "Session validation failed", "error", err)
		return nil, err
	}

	if a.revoker != nil && userCtx.SessionID != "" {
		revoked, err := a.revoker.IsRevoked(c.UserContext(), userCtx.SessionID)
		if err != nil {
			logger.ErrorContext(c.UserContext(), "Failed to check session revocation", "error", err)
			return nil, fmt.Errorf("%w: %w", errRevocationCheck, err)
		}
		if revoked {
			return nil, errSessionRevoked
		}
	}

	return userCtx, nil
}

func (a *SessionAuth) attach(c *fiber.Ctx, userCtx *utils.UserContext) {
	c.Locals(utils.LocalsUserKey, userCtx)
	c.SetUserContext(logger.ContextWithUserID(c.UserContext(), userCtx.ID.String()))
}
