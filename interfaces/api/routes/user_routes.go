package routes

import (
	"github.com/gofiber/fiber/v2"

	"gofiber-todo/interfaces/api/handlers"
	"gofiber-todo/interfaces/api/middleware"
)

func SetupUserRoutes(app *fiber.App, h *handlers.Handlers, auth *middleware.SessionAuth) {
	account := app.Group("/account", auth.Authenticated())
	account.Get("/", h.UserHandler.GetAccount)
	account.Delete("/", h.UserHandler.DeleteAccount)
	account.Post("/delete/", h.UserHandler.DeleteAccount)
}
