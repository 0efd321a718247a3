package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"gofiber-todo/interfaces/api/handlers"
	"gofiber-todo/interfaces/api/routes"
	"gofiber-todo/pkg/di"
	"gofiber-todo/pkg/logger"
)

func main() {
	// Initialize DI container
	container := di.NewContainer()

	// Initialize all dependencies (including logger)
	if err := container.Initialize(); err != nil {
		// ใช้ log พื้นฐานก่อน logger init
		panic("Failed to initialize container: " + err.Error())
	}

	// Create handlers from services
	h := handlers.NewHandlers(container.GetHandlerServices())
	app := routes.NewApp(container.GetRouteOptions(), h, container.GetSessionAuth())

	// Setup graceful shutdown
	setupGracefulShutdown(app, container)

	// Start server
	port := container.GetConfig().App.Port
	logger.Info("Server starting",
		"port", port,
		"env", container.GetConfig().App.Env,
		"app", container.GetConfig().App.Name,
	)
	logger.Info("Endpoints available",
		"tasks", "http://localhost:"+port+"/",
		"health", "http://localhost:"+port+"/health",
		"metrics", "http://localhost:"+port+"/metrics",
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		// รอ request ที่ค้างอยู่ก่อนปิด DB
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
