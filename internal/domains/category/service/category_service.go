package service

import (
	"context"
	"fmt"
	"strings"

	"catalog-admin/internal/domains/category"
	"catalog-admin/internal/shared/clock"
	"catalog-admin/internal/shared/pagination"
	"catalog-admin/internal/shared/validation"
	"catalog-admin/pkg/logger"
)

type categoryServiceImpl struct {
	gateway category.CategoryGateway
	clock   clock.Clock
}

func NewCategoryService(gateway category.CategoryGateway, clk clock.Clock) category.CategoryService {
	if clk == nil {
		clk = clock.System()
	}
	return &categoryServiceImpl{
		gateway: gateway,
		clock:   clk,
	}
}

func (s *categoryServiceImpl) Create(ctx context.Context, req *category.CreateCategoryReq) (*category.CategoryResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create category: invalid request")
	}

	// ========== STEP 1: Build aggregate ==========
	entity := category.NewCategory(s.clock, req.Name, req.Description, req.Active())

	// ========== STEP 2: Validate (gom toàn bộ lỗi) ==========
	if err := validate(entity); err != nil {
		logger.Info("Create: category validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	// ========== STEP 3: Persist ==========
	created, err := s.gateway.Create(ctx, entity)
	if err != nil {
		logger.Error("Create: gateway create failed", err)
		return nil, fmt.Errorf("create category: %w", err)
	}

	logger.Info("category created", map[string]interface{}{
		"id":   created.ID().String(),
		"name": created.Name(),
	})

	resp := category.ToCategoryResp(created)
	return &resp, nil
}

func (s *categoryServiceImpl) GetByID(ctx context.Context, id category.CategoryID) (*category.CategoryResp, error) {
	entity, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := category.ToCategoryResp(entity)
	return &resp, nil
}

func (s *categoryServiceImpl) List(ctx context.Context, query category.CategorySearchQuery) (pagination.Pagination[category.CategoryResp], error) {
	page, err := s.gateway.FindAll(ctx, query.Normalize())
	if err != nil {
		logger.Error("List: gateway find all failed", err)
		return pagination.Pagination[category.CategoryResp]{}, fmt.Errorf("list categories: %w", err)
	}

	return pagination.Map(page, category.ToCategoryResp), nil
}

// Update là PUT: thay toàn bộ name/description/is_active
func (s *categoryServiceImpl) Update(ctx context.Context, id category.CategoryID, req *category.UpdateCategoryReq) (*category.CategoryResp, error) {
	if req == nil {
		return nil, fmt.Errorf("update category: invalid request")
	}

	// ========== STEP 1: Load ==========
	entity, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// ========== STEP 2: Apply + validate ==========
	entity.Update(s.clock, req.Name, req.Description, req.IsActive)

	if err := validate(entity); err != nil {
		logger.Info("Update: category validation failed", map[string]interface{}{
			"id":    id.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	// ========== STEP 3: Persist ==========
	return s.save(ctx, entity, "Update")
}

func (s *categoryServiceImpl) Activate(ctx context.Context, id category.CategoryID) (*category.CategoryResp, error) {
	entity, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Activate(s.clock)
	return s.save(ctx, entity, "Activate")
}

// Deactivate là soft delete: category vẫn còn, deleted_at được set
func (s *categoryServiceImpl) Deactivate(ctx context.Context, id category.CategoryID) (*category.CategoryResp, error) {
	entity, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Deactivate(s.clock)
	return s.save(ctx, entity, "Deactivate")
}

// Delete là hard delete; id không tồn tại không phải lỗi
func (s *categoryServiceImpl) Delete(ctx context.Context, id category.CategoryID) error {
	if err := s.gateway.DeleteByID(ctx, id); err != nil {
		logger.Error("Delete: gateway delete failed", err)
		return fmt.Errorf("delete category: %w", err)
	}

	logger.Info("category deleted", map[string]interface{}{
		"id": id.String(),
	})
	return nil
}

func (s *categoryServiceImpl) save(ctx context.Context, entity *category.Category, op string) (*category.CategoryResp, error) {
	updated, err := s.gateway.Update(ctx, entity)
	if err != nil {
		logger.Error(op+": gateway update failed", err)
		return nil, fmt.Errorf("%s category: %w", strings.ToLower(op), err)
	}

	logger.Info("category updated", map[string]interface{}{
		"id":        updated.ID().String(),
		"op":        op,
		"is_active": updated.IsActive(),
	})

	resp := category.ToCategoryResp(updated)
	return &resp, nil
}

func validate(entity *category.Category) error {
	notification := validation.NewNotification()
	if err := entity.Validate(notification); err != nil {
		return err
	}
	return notification.Err()
}
