package handlers

import (
	"gofiber-todo/domain/services"
	"gofiber-todo/pkg/config"
	"gofiber-todo/pkg/greeting"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
	Greeter     greeting.Source // nil = greeting.Default
	Session     config.SessionConfig
}

// Handlers contains all HTTP handlers
type Handlers struct {
	UserHandler *UserHandler
	TaskHandler *TaskHandler
	AuthHandler *AuthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	greeter := services.Greeter
	if greeter == nil {
		greeter = greeting.Default
	}
	cookies := newSessionCookies(services.Session)

	return &Handlers{
		UserHandler: NewUserHandler(services.UserService, cookies),
		TaskHandler: NewTaskHandler(services.TaskService, greeter),
		AuthHandler: NewAuthHandler(services.UserService, cookies),
	}
}
