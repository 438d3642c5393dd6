package main

import (
	"context"
	"net/http"
	"time"

	"catalog-admin/internal/shared/middleware"
	"catalog-admin/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCategoryRoutes(v1, c)
	}

	return router
}

// ========================================
// CATEGORY ROUTES
// ========================================
// GET là public; route ghi cần token admin khi JWT_REQUIRED=true
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	var admin []gin.HandlerFunc
	if c.Config.JWT.Required {
		admin = append(admin,
			middleware.AuthMiddleware(c.JWTManager),
			middleware.AdminMiddleware(),
		)
	}

	c.CategoryHandler.RegisterRoutes(v1, admin...)
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services, healthy := appCtx.HealthCheck(ctx)

		status := "ok"
		statusCode := http.StatusOK
		if !healthy {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
