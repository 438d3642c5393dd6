package cache_test

import (
	"context"
	"testing"
	"time"

	"catalog-admin/internal/infrastructure/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// unreachable trỏ vào port không có Redis để test nhánh lỗi mà không cần server
func unreachable() *cache.RedisCache {
	return cache.NewRedisCacheFromClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))
}

func TestRedisCache_ConnectionErrors(t *testing.T) {
	rc := unreachable()
	defer rc.Close()
	ctx := context.Background()

	var dest map[string]string
	found, err := rc.Get(ctx, "category:x", &dest)
	assert.False(t, found)
	assert.Error(t, err)

	assert.Error(t, rc.Set(ctx, "category:x", map[string]string{"a": "b"}, time.Minute))
	assert.Error(t, rc.Ping(ctx))
	assert.Error(t, rc.DeletePattern(ctx, "category:list:*"))
}

func TestRedisCache_SetRejectsUnencodableValue(t *testing.T) {
	rc := unreachable()
	defer rc.Close()

	err := rc.Set(context.Background(), "k", make(chan int), time.Minute)

	assert.ErrorContains(t, err, "redis encode")
}

func TestRedisCache_DeleteNoKeysIsNoop(t *testing.T) {
	rc := unreachable()
	defer rc.Close()

	assert.NoError(t, rc.Delete(context.Background()))
}

func TestRedisCache_CloseNilClient(t *testing.T) {
	rc := &cache.RedisCache{}

	assert.NoError(t, rc.Close())
	assert.Error(t, rc.HealthCheck(context.Background()))
}
