package routes

import (
	"github.com/gofiber/fiber/v2"

	"gofiber-todo/interfaces/api/handlers"
	"gofiber-todo/interfaces/api/middleware"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers, auth *middleware.SessionAuth) {
	protected := auth.Authenticated()

	app.Get("/", protected, h.TaskHandler.ListTasks)
	app.Get("/view-task/:id/", protected, h.TaskHandler.GetTask)

	// GET ของ form สร้าง task เปิดได้โดยไม่ login
	app.Get("/create-task/", auth.Optional(), h.TaskHandler.CreateTaskForm)
	app.Post("/create-task/", protected, h.TaskHandler.CreateTask)

	app.Get("/update-task/:id/", protected, h.TaskHandler.EditTask)
	app.Post("/update-task/:id/", protected, h.TaskHandler.UpdateTask)
	app.Put("/update-task/:id/", protected, h.TaskHandler.UpdateTask)
	app.Patch("/update-task/:id/", protected, h.TaskHandler.UpdateTask)

	app.Get("/delete-task/:id/", protected, h.TaskHandler.RequestDelete)
	app.Post("/delete-task/:id/", protected, h.TaskHandler.ConfirmDelete)
	app.Delete("/delete-task/:id/", protected, h.TaskHandler.ConfirmDelete)
}
