package middleware

import (
	"net/http"

	"catalog-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(ContextRequestID)).
					Str("path", c.Request.URL.Path).
					Interface("error", err).
					Msg("Panic recovered")

				response.AbortWithError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
			}
		}()

		c.Next()
	}
}
