package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Session  SessionConfig
	Security SecurityConfig
	Log      LogConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

// DatabaseConfig รองรับ postgres (production) และ sqlite (dev/test)
type DatabaseConfig struct {
	Driver     string // postgres, sqlite
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string // ใช้เมื่อ Driver = sqlite
}

// RedisConfig สำหรับ session deny-list (optional, ว่าง = ปิด)
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Issuer string
}

// SessionConfig กำหนด cookie ที่ใช้เก็บ session token
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type SecurityConfig struct {
	CSRFEnabled     bool
	LoginRateLimit  int // requests ต่อ LoginRateWindow ต่อ IP
	LoginRateWindow time.Duration
	AllowOrigins    string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
	SQL        bool   // log SQL ทุก query (debug)
}

func LoadConfig() (*Config, error) {
	// ไม่มี .env ก็ไม่เป็นไร ใช้ environment variables แทน
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	loginRateLimit, _ := strconv.Atoi(getEnv("LOGIN_RATE_LIMIT", "10"))

	// default session อยู่ได้ 2 สัปดาห์
	sessionTTL := getDuration("SESSION_TTL", 14*24*time.Hour)
	loginRateWindow := getDuration("LOGIN_RATE_WINDOW", time.Minute)

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Todo"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "todo"),
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "todo.db"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
			Issuer: getEnv("JWT_ISSUER", "gofiber-todo"),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "sessionid"),
			TTL:        sessionTTL,
			Secure:     getEnv("SESSION_COOKIE_SECURE", "false") == "true",
		},
		Security: SecurityConfig{
			CSRFEnabled:     getEnv("CSRF_ENABLED", "true") == "true",
			LoginRateLimit:  loginRateLimit,
			LoginRateWindow: loginRateWindow,
			AllowOrigins:    getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   getEnv("LOG_COMPRESS", "true") == "true",
			SQL:        getEnv("LOG_SQL", "false") == "true",
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration อ่านค่าแบบ time.ParseDuration (เช่น "336h", "30s")
func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
