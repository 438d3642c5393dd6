package category

import (
	"context"

	"catalog-admin/internal/shared/pagination"
)

// ============================================================
// PERSISTENCE PORT: CategoryGateway
// ============================================================
// Implementations nằm trong package repository:
//   - postgres (pgxpool)
//   - memory (dev/test)
//   - cached (decorator Redis bọc gateway khác)
type CategoryGateway interface {
	FindAll(ctx context.Context, query CategorySearchQuery) (pagination.Pagination[*Category], error)

	Create(ctx context.Context, category *Category) (*Category, error)

	// Update ghi đè toàn bộ field mutable (last write wins)
	Update(ctx context.Context, category *Category) (*Category, error)

	// FindByID trả về ErrCategoryNotFound nếu không có
	FindByID(ctx context.Context, id CategoryID) (*Category, error)

	// DeleteByID là hard delete; soft delete là Deactivate + Update
	DeleteByID(ctx context.Context, id CategoryID) error
}
