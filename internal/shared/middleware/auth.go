package middleware

import (
	"strings"

	"catalog-admin/internal/shared/response"
	"catalog-admin/pkg/jwt"
	"catalog-admin/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware - Middleware xác thực JWT access token
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			return
		}

		// 3. Verify và parse JWT
		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			logger.Debug("auth: invalid token: " + err.Error())
			response.Unauthorized(c, "invalid token")
			return
		}

		// 4. Set user vào context cho AdminMiddleware/handler
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}
