package main

import (
	"context"
	"flag"
	"os"
	"time"

	"catalog-admin/internal/config"
	"catalog-admin/internal/infrastructure/database"
	"catalog-admin/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	statusOnly := flag.Bool("status", false, "chỉ in các migration chưa apply")
	timeout := flag.Duration("timeout", time.Minute, "timeout cho toàn bộ lần chạy")
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	if err := run(*statusOnly, *timeout); err != nil {
		logger.Error("Migration failed", err)
		os.Exit(1)
	}
}

func run(statusOnly bool, timeout time.Duration) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	sqlDB, err := database.OpenSQL(dbConfig.DSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	migrator, err := database.NewMigrator(sqlDB)
	if err != nil {
		return err
	}

	if statusOnly {
		pending, err := migrator.Pending(ctx)
		if err != nil {
			return err
		}
		for _, m := range pending {
			logger.Info("Pending migration", map[string]interface{}{
				"version": m.Version,
				"name":    m.Name,
			})
		}
		logger.Info("Migration status", map[string]interface{}{"pending": len(pending)})
		return nil
	}

	applied, err := migrator.Up(ctx)
	if err != nil {
		return err
	}

	logger.Info("Migrations complete", map[string]interface{}{"applied": applied})
	return nil
}
