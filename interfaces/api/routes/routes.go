package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"gofiber-todo/interfaces/api/handlers"
	"gofiber-todo/interfaces/api/middleware"
)

// Options ส่วนของ config ที่ HTTP layer ใช้
type Options struct {
	AppName         string
	AllowOrigins    string
	CSRFEnabled     bool
	SecureCookies   bool
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// NewApp สร้าง fiber app พร้อม middleware และ routes ทั้งหมด
func NewApp(opts Options, h *handlers.Handlers, auth *middleware.SessionAuth) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      opts.AppName,
		BodyLimit:    1 * 1024 * 1024,
	})

	// Setup middleware (order matters!)
	app.Use(middleware.RequestIDMiddleware()) // ต้องมาก่อน logger
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.MetricsMiddleware())
	app.Use(middleware.CorsMiddleware(opts.AllowOrigins))
	app.Use(middleware.SecurityHeaders())
	if opts.CSRFEnabled {
		app.Use(middleware.CSRFProtection(opts.SecureCookies))
	}

	SetupRoutes(app, h, auth, opts)
	return app
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, auth *middleware.SessionAuth, opts Options) {
	SetupHealthRoutes(app)
	SetupAuthRoutes(app, h, auth, opts)
	SetupTaskRoutes(app, h, auth)
	SetupUserRoutes(app, h, auth)
}
