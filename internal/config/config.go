package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Storage StorageConfig
}

type AppConfig struct {
	Name            string
	Environment     string // development, staging, production
	Port            string
	Version         string
	ShutdownTimeout time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type JWTConfig struct {
	Secret    string
	Issuer    string
	AccessTTL time.Duration
	// Required = false: route ghi không cần token (chỉ dùng local)
	Required bool
}

type StorageConfig struct {
	Driver      string // postgres | memory
	AutoMigrate bool
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:            getEnv("APP_NAME", "Catalog Admin API"),
			Environment:     getEnv("APP_ENV", "development"),
			Port:            getEnv("APP_PORT", "8080"),
			Version:         getEnv("APP_VERSION", "1.0.0"),
			ShutdownTimeout: getEnvDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: getEnvDuration("REDIS_CACHE_TTL", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", defaultJWTSecret),
			Issuer:    getEnv("JWT_ISSUER", "catalog-admin"),
			AccessTTL: getEnvDuration("JWT_ACCESS_TTL", 24*time.Hour),
			Required:  getEnvBool("JWT_REQUIRED", true),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage.Driver)
	}

	if c.Redis.CacheTTL <= 0 {
		return fmt.Errorf("REDIS_CACHE_TTL must be positive")
	}

	// Production environment phải có JWT secret và bật auth
	if c.IsProduction() {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if !c.JWT.Required {
			return fmt.Errorf("JWT_REQUIRED cannot be disabled in production")
		}
		if c.Storage.Driver == StorageMemory {
			return fmt.Errorf("STORAGE_DRIVER=memory is not allowed in production")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
