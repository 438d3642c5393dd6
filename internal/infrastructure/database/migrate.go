package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"catalog-admin/pkg/logger"

	"github.com/lib/pq"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

const (
	createMigrationsTableSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	selectAppliedSQL   = `SELECT version FROM schema_migrations`
	insertMigrationSQL = `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`
)

// Migration là một file "<version>_<name>.sql"
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// LoadMigrations đọc mọi file .sql trong dir, sắp xếp theo version tăng dần
func LoadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	seen := make(map[int]string)
	migrations := make([]Migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}

		base := strings.TrimSuffix(entry.Name(), ".sql")
		versionStr, name, ok := strings.Cut(base, "_")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid migration file name %q", entry.Name())
		}

		version, err := strconv.Atoi(versionStr)
		if err != nil || version <= 0 {
			return nil, fmt.Errorf("invalid migration version in %q", entry.Name())
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", version, prev, entry.Name())
		}
		seen[version] = entry.Name()

		body, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			SQL:     strings.TrimSpace(string(body)),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// OpenSQL mở *sql.DB qua driver lib/pq, dùng riêng cho migration
func OpenSQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrator apply các migration chưa chạy, mỗi migration một transaction
type Migrator struct {
	db         *sql.DB
	migrations []Migration
}

func NewMigrator(db *sql.DB) (*Migrator, error) {
	migrations, err := LoadMigrations(embeddedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	return NewMigratorWith(db, migrations), nil
}

func NewMigratorWith(db *sql.DB, migrations []Migration) *Migrator {
	return &Migrator{db: db, migrations: migrations}
}

// Up trả về số migration đã apply trong lần chạy này
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if _, err := m.db.ExecContext(ctx, createMigrationsTableSQL); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", describePQError(err))
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range m.migrations {
		if applied[mig.Version] {
			continue
		}

		if err := m.apply(ctx, mig); err != nil {
			return count, err
		}
		count++

		logger.Info("[MIGRATE] Applied migration", map[string]interface{}{
			"version": mig.Version,
			"name":    mig.Name,
		})
	}

	return count, nil
}

// Pending trả về các migration chưa apply
func (m *Migrator) Pending(ctx context.Context) ([]Migration, error) {
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]Migration, 0)
	for _, mig := range m.migrations {
		if !applied[mig.Version] {
			pending = append(pending, mig)
		}
	}
	return pending, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := m.db.QueryContext(ctx, selectAppliedSQL)
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", describePQError(err))
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate migrations: %w", err)
	}
	return applied, nil
}

func (m *Migrator) apply(ctx context.Context, mig Migration) (err error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %d: %w", mig.Version, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Error("[MIGRATE] Rollback failed", rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, mig.SQL); err != nil {
		return fmt.Errorf("migration %d_%s: %w", mig.Version, mig.Name, describePQError(err))
	}

	if _, err = tx.ExecContext(ctx, insertMigrationSQL, mig.Version, mig.Name); err != nil {
		return fmt.Errorf("record migration %d: %w", mig.Version, describePQError(err))
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %d: %w", mig.Version, err)
	}
	return nil
}

// describePQError thêm SQLSTATE vào message, vẫn giữ chain gốc
func describePQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%w (sqlstate %s: %s)", err, pqErr.Code, pqErr.Code.Name())
	}
	return err
}
