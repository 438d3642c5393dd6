package database

import (
	"context"
	"fmt"
	"time"

	"catalog-admin/pkg/logger"
)

func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close idempotent: gọi nhiều lần không lỗi
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	logger.Info("[DATABASE] Closing database connection pool...", nil)
	db.Pool.Close()
	db.Pool = nil
	return nil
}

// PoolStats là snapshot của pgxpool.Stat, trả ra ở /health
type PoolStats struct {
	TotalConns         int32         `json:"total_conns"`
	IdleConns          int32         `json:"idle_conns"`
	AcquiredConns      int32         `json:"acquired_conns"`
	MaxConns           int32         `json:"max_conns"`
	AcquireCount       int64         `json:"acquire_count"`
	AvgAcquireDuration time.Duration `json:"avg_acquire_duration"`
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		TotalConns:         raw.TotalConns(),
		IdleConns:          raw.IdleConns(),
		AcquiredConns:      raw.AcquiredConns(),
		MaxConns:           raw.MaxConns(),
		AcquireCount:       raw.AcquireCount(),
		AvgAcquireDuration: calculateAvgDuration(raw.AcquireDuration(), raw.AcquireCount()),
	}, nil
}

func calculateAvgDuration(totalDuration time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return totalDuration / time.Duration(count)
}
