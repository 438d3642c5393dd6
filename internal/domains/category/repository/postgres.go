package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalog-admin/internal/domains/category"
	"catalog-admin/internal/shared/pagination"
	pgdb "catalog-admin/pkg/database"
	"catalog-admin/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation là SQLSTATE của unique_violation
const pgUniqueViolation = "23505"

const selectColumns = `
	id::text, name, description, active,
	created_at, updated_at, deleted_at
`

type postgresGateway struct {
	pool *pgxpool.Pool
}

// NewPostgresGateway tạo CategoryGateway dùng pgxpool
func NewPostgresGateway(pool *pgxpool.Pool) category.CategoryGateway {
	return &postgresGateway{pool: pool}
}

// ============================================================
// CREATE
// ============================================================
func (r *postgresGateway) Create(
	ctx context.Context,
	entity *category.Category,
) (*category.Category, error) {
	const query = `
		INSERT INTO categories (
			id, name, description, active,
			created_at, updated_at, deleted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + selectColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID().String(),
		entity.Name(),
		entity.Description(),
		entity.IsActive(),
		entity.CreatedAt(),
		entity.UpdatedAt(),
		entity.DeletedAt(),
	)

	created, err := scanCategory(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			logger.Error("Create: duplicate category", err)
			return nil, category.ErrDuplicateCategory
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return created, nil
}

// ============================================================
// UPDATE - ghi đè field mutable, created_at không đổi
// ============================================================
func (r *postgresGateway) Update(
	ctx context.Context,
	entity *category.Category,
) (*category.Category, error) {
	const query = `
		UPDATE categories
		SET name = $2,
			description = $3,
			active = $4,
			updated_at = $5,
			deleted_at = $6
		WHERE id = $1
		RETURNING ` + selectColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID().String(),
		entity.Name(),
		entity.Description(),
		entity.IsActive(),
		entity.UpdatedAt(),
		entity.DeletedAt(),
	)

	updated, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.NewNotFoundError(entity.ID())
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return updated, nil
}

// ============================================================
// READ: FindByID
// ============================================================
func (r *postgresGateway) FindByID(
	ctx context.Context,
	id category.CategoryID,
) (*category.Category, error) {
	query := `SELECT ` + selectColumns + ` FROM categories WHERE id = $1`

	entity, err := scanCategory(r.pool.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.NewNotFoundError(id)
		}
		logger.Error("FindByID: database error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return entity, nil
}

// ============================================================
// READ: FindAll - search + pagination
// ============================================================
// FLOW:
// 1. Normalize query (sort/direction đã whitelist)
// 2. Count total (không LIMIT/OFFSET)
// 3. Query page, cả 2 trong 1 read-only transaction
func (r *postgresGateway) FindAll(
	ctx context.Context,
	query category.CategorySearchQuery,
) (pagination.Pagination[*category.Category], error) {
	q := query.Normalize()
	listSQL, countSQL, args := buildFindAllQuery(q)

	// COUNT và page đọc cùng snapshot để total khớp với items
	return pgdb.WithTransactionResult(ctx, r.pool, pgdb.ReadOnlySnapshot,
		func(tx pgx.Tx) (pagination.Pagination[*category.Category], error) {
			var total int64
			if err := tx.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
				logger.Error("FindAll: count query failed", err)
				return pagination.Pagination[*category.Category]{}, fmt.Errorf("failed to count categories: %w", err)
			}

			listArgs := append(args, q.Limit, q.Offset())
			rows, err := tx.Query(ctx, listSQL, listArgs...)
			if err != nil {
				logger.Error("FindAll: list query failed", err)
				return pagination.Pagination[*category.Category]{}, fmt.Errorf("failed to list categories: %w", err)
			}
			defer rows.Close()

			items := make([]*category.Category, 0, q.Limit)
			for rows.Next() {
				entity, err := scanCategory(rows)
				if err != nil {
					return pagination.Pagination[*category.Category]{}, fmt.Errorf("failed to scan category: %w", err)
				}
				items = append(items, entity)
			}
			if err := rows.Err(); err != nil {
				return pagination.Pagination[*category.Category]{}, fmt.Errorf("failed to iterate categories: %w", err)
			}

			return pagination.New(q.Page, q.Limit, total, items), nil
		})
}

// ============================================================
// DELETE (hard delete)
// ============================================================
// Xóa id không tồn tại không phải lỗi
func (r *postgresGateway) DeleteByID(ctx context.Context, id category.CategoryID) error {
	const query = `DELETE FROM categories WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id.String()); err != nil {
		logger.Error("DeleteByID: database error", err)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// ========== Helpers ==========

// buildFindAllQuery trả về (list SQL, count SQL, args chung).
// List SQL có thêm 2 placeholder cuối cho LIMIT/OFFSET.
// q phải được Normalize trước: Sort/Direction nối thẳng vào SQL.
func buildFindAllQuery(q category.CategorySearchQuery) (string, string, []interface{}) {
	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if q.Terms != "" {
		whereClauses = append(whereClauses,
			fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+escapeLike(q.Terms)+"%")
		argIndex++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	countSQL := "SELECT COUNT(*) FROM categories" + whereClause

	listSQL := fmt.Sprintf(
		"SELECT %s FROM categories%s ORDER BY %s %s, id ASC LIMIT $%d OFFSET $%d",
		strings.TrimSpace(selectColumns),
		whereClause,
		q.Sort,
		strings.ToUpper(q.Direction),
		argIndex,
		argIndex+1,
	)

	return listSQL, countSQL, args
}

// escapeLike escape ký tự đặc biệt của LIKE (\ % _)
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	var (
		id          string
		name        string
		description string
		active      bool
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   *time.Time
	)

	if err := row.Scan(&id, &name, &description, &active, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	return category.Restore(
		category.CategoryIDFrom(id),
		&name,
		description,
		active,
		createdAt.UTC(),
		updatedAt.UTC(),
		utcPtr(deletedAt),
	), nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
