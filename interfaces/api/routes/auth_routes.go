package routes

import (
	"github.com/gofiber/fiber/v2"

	"gofiber-todo/interfaces/api/handlers"
	"gofiber-todo/interfaces/api/middleware"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers, auth *middleware.SessionAuth, opts Options) {
	guest := auth.RedirectIfAuthenticated()
	rateLimit := middleware.LoginRateLimit(opts.LoginRateLimit, opts.LoginRateWindow)

	app.Get("/login/", guest, h.AuthHandler.LoginPage)
	app.Post("/login/", rateLimit, h.AuthHandler.Login)

	app.Get("/register/", guest, h.AuthHandler.RegisterPage)
	app.Post("/register/", h.AuthHandler.Register)

	app.Post("/logout/", auth.Authenticated(), h.AuthHandler.Logout)
}
