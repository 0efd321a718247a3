package di

import (
	"gofiber-todo/application/policy"
	"gofiber-todo/application/serviceimpl"
	"gofiber-todo/domain/ports"
	"gofiber-todo/domain/repositories"
	"gofiber-todo/domain/services"
	"gofiber-todo/infrastructure/memory"
	"gofiber-todo/infrastructure/persistence"
	redispkg "gofiber-todo/infrastructure/redis"
	"gofiber-todo/interfaces/api/handlers"
	"gofiber-todo/interfaces/api/middleware"
	"gofiber-todo/interfaces/api/routes"
	"gofiber-todo/pkg/config"
	"gofiber-todo/pkg/greeting"
	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client     // Redis client สำหรับ session deny-list (optional)
	SessionRevoker ports.SessionRevoker // Redis ถ้ามี ไม่งั้นใช้ memory
	SessionSigner  *utils.SessionSigner

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	TaskAccessPolicy *policy.TaskAccessPolicy
	UserService      services.UserService
	TaskService      services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	return c.initServices()
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
		"file", c.Config.Log.FilePath,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := persistence.DatabaseConfig{
		Driver:     c.Config.Database.Driver,
		Host:       c.Config.Database.Host,
		Port:       c.Config.Database.Port,
		User:       c.Config.Database.User,
		Password:   c.Config.Database.Password,
		DBName:     c.Config.Database.DBName,
		SSLMode:    c.Config.Database.SSLMode,
		SQLitePath: c.Config.Database.SQLitePath,
		LogSQL:     c.Config.Log.SQL,
	}

	db, err := persistence.NewDatabase(dbConfig, logger.GetLogger())
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver, "db", c.Config.Database.DBName)

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (using in-memory session deny-list)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.SessionRevoker = redispkg.NewSessionRevoker(redisClient)
			logger.Info("Redis session deny-list enabled")
		}
	}
	if c.SessionRevoker == nil {
		c.SessionRevoker = memory.NewSessionRevoker()
	}

	c.SessionSigner = utils.NewSessionSigner(c.Config.JWT.Secret, c.Config.JWT.Issuer, c.Config.Session.TTL)
	if c.Config.IsProduction() && c.Config.JWT.Secret == "your-secret-key" {
		logger.Warn("JWT_SECRET is using the default value")
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = persistence.NewUserRepository(c.DB)
	c.TaskRepository = persistence.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.TaskAccessPolicy = policy.NewTaskAccessPolicy()
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.SessionSigner, c.SessionRevoker)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.TaskAccessPolicy)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := persistence.Close(c.DB); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		} else {
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService: c.UserService,
		TaskService: c.TaskService,
		Greeter:     greeting.Default,
		Session:     c.Config.Session,
	}
}

// GetSessionAuth middleware สำหรับอ่าน session ของ request
func (c *Container) GetSessionAuth() *middleware.SessionAuth {
	return middleware.NewSessionAuth(c.SessionSigner, c.SessionRevoker, c.Config.Session.CookieName)
}

// GetRouteOptions ส่วนของ config ที่ HTTP layer ใช้
func (c *Container) GetRouteOptions() routes.Options {
	return routes.Options{
		AppName:         c.Config.App.Name,
		AllowOrigins:    c.Config.Security.AllowOrigins,
		CSRFEnabled:     c.Config.Security.CSRFEnabled,
		SecureCookies:   c.Config.Session.Secure,
		LoginRateLimit:  c.Config.Security.LoginRateLimit,
		LoginRateWindow: c.Config.Security.LoginRateWindow,
	}
}
