package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-admin/internal/config"
	"catalog-admin/pkg/container"
	"catalog-admin/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContainer(t *testing.T, jwtRequired bool) *container.Container {
	t.Helper()

	c, err := container.NewContainerWithConfig(context.Background(), &config.Config{
		App:     config.AppConfig{Environment: "test", Version: "test"},
		Redis:   config.RedisConfig{CacheTTL: time.Minute},
		JWT:     config.JWTConfig{Secret: "test-secret", Issuer: "catalog-admin", AccessTTL: time.Hour, Required: jwtRequired},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
	})
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)
	return c
}

func TestHealth(t *testing.T) {
	router := SetupRouter(newTestContainer(t, true))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCategoryRoutes_AdminRequired(t *testing.T) {
	c := newTestContainer(t, true)
	router := SetupRouter(c)
	body := []byte(`{"name":"Movies"}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := c.JWTManager.GenerateAccessToken("admin-1", jwt.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Movies"`)
}

func TestCategoryRoutes_AuthDisabled(t *testing.T) {
	router := SetupRouter(newTestContainer(t, false))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/categories",
		bytes.NewReader([]byte(`{"name":"Movies"}`))))

	assert.Equal(t, http.StatusCreated, w.Code)
}
