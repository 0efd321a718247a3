package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"gofiber-todo/pkg/config"
	"gofiber-todo/pkg/utils"
)

// sessionCookies เขียน/ลบ cookie ที่เก็บ session token
type sessionCookies struct {
	name   string
	secure bool
}

func newSessionCookies(cfg config.SessionConfig) sessionCookies {
	name := cfg.CookieName
	if name == "" {
		name = "sessionid"
	}
	return sessionCookies{name: name, secure: cfg.Secure}
}

func (s sessionCookies) set(c *fiber.Ctx, token *utils.SessionToken) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    token.Token,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s sessionCookies) clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
