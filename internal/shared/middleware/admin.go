package middleware

import (
	"catalog-admin/internal/shared/response"
	"catalog-admin/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware checks if user has admin role (chạy sau AuthMiddleware)
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok || role != jwt.RoleAdmin {
			response.Forbidden(c, "Access denied: admin role required")
			return
		}

		c.Next()
	}
}
