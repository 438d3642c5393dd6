package container_test

import (
	"context"
	"testing"
	"time"

	"catalog-admin/internal/config"
	"catalog-admin/internal/domains/category"
	"catalog-admin/pkg/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Environment: "test"},
		Redis:   config.RedisConfig{CacheTTL: time.Minute},
		JWT:     config.JWTConfig{Secret: "test-secret", Issuer: "catalog-admin", AccessTTL: time.Hour, Required: true},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
	}
}

func TestNewContainerWithConfig_MemoryStorage(t *testing.T) {
	ctx := context.Background()

	c, err := container.NewContainerWithConfig(ctx, memoryConfig())
	require.NoError(t, err)
	defer c.Cleanup()

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Cache)
	require.NotNil(t, c.CategoryGateway)
	require.NotNil(t, c.CategoryService)
	require.NotNil(t, c.CategoryHandler)
	require.NotNil(t, c.JWTManager)

	name := "Movies"
	created, err := c.CategoryService.Create(ctx, &category.CreateCategoryReq{Name: &name})
	require.NoError(t, err)

	got, err := c.CategoryService.GetByID(ctx, category.CategoryIDFrom(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Movies", got.Name)
}

func TestHealthCheck_MemoryStorage(t *testing.T) {
	c, err := container.NewContainerWithConfig(context.Background(), memoryConfig())
	require.NoError(t, err)

	status, healthy := c.HealthCheck(context.Background())

	assert.True(t, healthy)
	assert.Equal(t, "disabled", status["database"])
	assert.Equal(t, "disabled", status["redis"])
}
