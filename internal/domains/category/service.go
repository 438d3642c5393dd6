package category

import (
	"context"

	"catalog-admin/internal/shared/pagination"
)

// ============================================================
// SERVICE INTERFACE: CategoryService
// ============================================================
// Use case layer giữa handler và CategoryGateway.
// Lỗi validation trả về dạng *validation.DomainError.
type CategoryService interface {
	Create(ctx context.Context, req *CreateCategoryReq) (*CategoryResp, error)

	GetByID(ctx context.Context, id CategoryID) (*CategoryResp, error)

	List(ctx context.Context, query CategorySearchQuery) (pagination.Pagination[CategoryResp], error)

	Update(ctx context.Context, id CategoryID, req *UpdateCategoryReq) (*CategoryResp, error)

	Activate(ctx context.Context, id CategoryID) (*CategoryResp, error)

	Deactivate(ctx context.Context, id CategoryID) (*CategoryResp, error)

	Delete(ctx context.Context, id CategoryID) error
}
