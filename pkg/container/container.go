package container

import (
	"context"
	"fmt"
	"time"

	"catalog-admin/internal/config"
	"catalog-admin/internal/domains/category"
	categoryHandler "catalog-admin/internal/domains/category/handler"
	categoryRepo "catalog-admin/internal/domains/category/repository"
	categoryService "catalog-admin/internal/domains/category/service"
	infraCache "catalog-admin/internal/infrastructure/cache"
	"catalog-admin/internal/infrastructure/database"
	"catalog-admin/internal/shared/clock"
	"catalog-admin/pkg/cache"
	"catalog-admin/pkg/jwt"
	"catalog-admin/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả dependencies của application.
// Thứ tự init: config -> DB -> cache -> JWT -> gateway -> service -> handler
type Container struct {
	// INFRASTRUCTURE
	Config     *config.Config
	DB         *database.PostgresDB // nil khi STORAGE_DRIVER=memory
	Cache      cache.Cache          // nil khi Redis tắt hoặc không kết nối được
	JWTManager *jwt.Manager
	Clock      clock.Clock

	// REPOSITORY
	CategoryGateway category.CategoryGateway

	// SERVICE
	CategoryService category.CategoryService

	// HANDLER
	CategoryHandler *categoryHandler.CategoryHandler

	redis *infraCache.RedisCache
}

// NewContainer load config từ env rồi build dependency graph
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewContainerWithConfig(ctx, cfg)
}

func NewContainerWithConfig(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger.Info("Initializing DI Container...", map[string]interface{}{
		"env":     cfg.App.Environment,
		"storage": cfg.Storage.Driver,
	})

	c := &Container{
		Config: cfg,
		Clock:  clock.System(),
	}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	if cfg.Storage.Driver == config.StoragePostgres {
		if err := c.initDatabase(ctx); err != nil {
			c.Cleanup()
			return nil, err
		}
	}

	// ========================================
	// STEP 2: CACHE (non-critical)
	// ========================================
	if cfg.Redis.Enabled {
		c.initCache(ctx)
	}

	// ========================================
	// STEP 3: JWT
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTTL)

	// ========================================
	// STEP 4-6: GATEWAY -> SERVICE -> HANDLER
	// ========================================
	c.initRepositories()
	c.CategoryService = categoryService.NewCategoryService(c.CategoryGateway, c.Clock)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)

	logger.Info("DI Container initialized successfully", nil)
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	if c.Config.Storage.AutoMigrate {
		if err := runMigrations(ctx, dbConfig); err != nil {
			return err
		}
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	return nil
}

// runMigrations chạy migration qua lib/pq trước khi mở pgxpool
func runMigrations(ctx context.Context, dbConfig *database.DBConfig) error {
	sqlDB, err := database.OpenSQL(dbConfig.DSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	migrator, err := database.NewMigrator(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations up to date", map[string]interface{}{"applied": applied})
	return nil
}

func (c *Container) initCache(ctx context.Context) {
	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	// Redis failure không critical - log warning và chạy không cache
	if err := rc.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed (non-critical)", map[string]interface{}{
			"error": err.Error(),
		})
		rc.Close()
		return
	}

	c.redis = rc
	c.Cache = rc
}

func (c *Container) initRepositories() {
	if c.DB != nil {
		c.CategoryGateway = categoryRepo.NewPostgresGateway(c.DB.Pool)
	} else {
		c.CategoryGateway = categoryRepo.NewMemoryGateway()
	}

	if c.Cache != nil {
		c.CategoryGateway = categoryRepo.NewCachedGateway(c.CategoryGateway, c.Cache, c.Config.Redis.CacheTTL)
	}
}

// HealthCheck trả về trạng thái từng dependency ("ok" / "disabled" / lỗi)
func (c *Container) HealthCheck(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{
		"database": "disabled",
		"redis":    "disabled",
	}
	healthy := true

	if c.DB != nil {
		if err := c.DB.HealthCheck(ctx); err != nil {
			status["database"] = err.Error()
			healthy = false
		} else {
			status["database"] = "ok"
		}
	}

	// Redis down không làm service unhealthy vì gateway vẫn đọc thẳng DB
	if c.Cache != nil {
		if err := c.Cache.Ping(ctx); err != nil {
			status["redis"] = err.Error()
		} else {
			status["redis"] = "ok"
		}
	}

	return status, healthy
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}

	logger.Info("Container cleanup completed", nil)
}
