package main

import (
	"flag"
	"fmt"
	"os"

	"catalog-admin/internal/config"
	"catalog-admin/pkg/jwt"
	"catalog-admin/pkg/logger"

	"github.com/joho/godotenv"
)

// admin-token in ra access token để gọi các route ghi của /api/v1/categories
func main() {
	userID := flag.String("user", "admin", "user id ghi vào token")
	role := flag.String("role", jwt.RoleAdmin, "role ghi vào token")
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", err)
		os.Exit(1)
	}

	token, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTTL).
		GenerateAccessToken(*userID, *role)
	if err != nil {
		logger.Error("Failed to sign token", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
