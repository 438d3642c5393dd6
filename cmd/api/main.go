package main

import (
	"os"

	"catalog-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (development/local); production dùng system env
	envErr := godotenv.Load()

	env := getEnv("APP_ENV", "development")
	logger.Init(env)

	if envErr != nil {
		logger.Info("No .env file found, using system environment variables", nil)
	}

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := Serve(); err != nil {
		logger.Error("Server stopped with error", err)
		os.Exit(1)
	}
}

// getEnv lấy environment variable với fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
