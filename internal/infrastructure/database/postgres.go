package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"catalog-admin/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig chứa thông tin kết nối PostgreSQL và cấu hình pool/retry
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	// Connection pool
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// DSN trả về connection string dạng URL, dùng chung cho pgx và lib/pq
func (c *DBConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

// PostgresDB quản lý pgxpool và lifecycle của connection
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
	}
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.Config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// === POOL SIZE ===
	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns

	// === CONNECTION LIFECYCLE ===
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod

	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// backoff: RetryDelay * 2^(attempt-1)
//
//	attempt 1: 1s, attempt 2: 2s, attempt 3: 4s ...
func backoff(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return base * time.Duration(1<<uint(attempt-1))
}

func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var lastErr error

	maxRetries := db.Config.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		logger.Info("[DATABASE] Connection attempt", map[string]interface{}{
			"attempt": attempt,
			"max":     maxRetries,
		})

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, err := pgxpool.NewWithConfig(connectCtx, config)
		if err == nil {
			err = pool.Ping(connectCtx)
			if err != nil {
				pool.Close()
			}
		}
		cancel()

		if err == nil {
			logger.Info("[DATABASE] Connected", map[string]interface{}{"attempt": attempt})
			return pool, nil
		}

		lastErr = err
		logger.Warn("[DATABASE] Attempt failed", map[string]interface{}{
			"attempt": attempt,
			"error":   err.Error(),
		})

		if attempt < maxRetries {
			delay := backoff(db.Config.RetryDelay, attempt)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}

// Connect: configure -> retry -> verify
func (db *PostgresDB) Connect(ctx context.Context) error {
	logger.Info("[DATABASE] Initializing PostgreSQL connection...", map[string]interface{}{
		"host":     db.Config.Host,
		"database": db.Config.DBName,
	})

	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool
	return nil
}

// HealthCheck dùng cho GET /health
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if err := db.Ping(ctx); err != nil {
		return err
	}

	stats := db.Pool.Stat()
	if stats.TotalConns() == 0 {
		return fmt.Errorf("no active database connections")
	}

	return nil
}
