package repository

import (
	"context"
	"fmt"
	"time"

	"catalog-admin/internal/domains/category"
	"catalog-admin/internal/shared/pagination"
	"catalog-admin/pkg/cache"
	"catalog-admin/pkg/logger"
)

const (
	cacheKeyPrefix   = "category:"
	cacheListPrefix  = "category:list:"
	cacheListPattern = "category:list:*"
	defaultCacheTTL  = 5 * time.Minute
)

// cachedGateway bọc một CategoryGateway, cache FindByID/FindAll trên Redis.
// Lỗi cache chỉ log, không bao giờ làm fail call; gateway bên trong là source of truth.
type cachedGateway struct {
	next  category.CategoryGateway
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedGateway(next category.CategoryGateway, c cache.Cache, ttl time.Duration) category.CategoryGateway {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &cachedGateway{next: next, cache: c, ttl: ttl}
}

// categorySnapshot là dạng JSON của Category trong cache
type categorySnapshot struct {
	ID          string     `json:"id"`
	Name        *string    `json:"name"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

type pageSnapshot struct {
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int64              `json:"total"`
	Items []categorySnapshot `json:"items"`
}

func toSnapshot(c *category.Category) categorySnapshot {
	return categorySnapshot{
		ID:          c.ID().String(),
		Name:        c.NamePtr(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		DeletedAt:   c.DeletedAt(),
	}
}

func (s categorySnapshot) toEntity() *category.Category {
	return category.Restore(
		category.CategoryIDFrom(s.ID),
		s.Name,
		s.Description,
		s.IsActive,
		s.CreatedAt,
		s.UpdatedAt,
		s.DeletedAt,
	)
}

func entityKey(id category.CategoryID) string {
	return cacheKeyPrefix + id.String()
}

func listKey(q category.CategorySearchQuery) string {
	return cacheListPrefix + q.CacheKey()
}

func (r *cachedGateway) Create(ctx context.Context, entity *category.Category) (*category.Category, error) {
	created, err := r.next.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, created.ID())
	return created, nil
}

func (r *cachedGateway) Update(ctx context.Context, entity *category.Category) (*category.Category, error) {
	updated, err := r.next.Update(ctx, entity)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, updated.ID())
	return updated, nil
}

func (r *cachedGateway) DeleteByID(ctx context.Context, id category.CategoryID) error {
	if err := r.next.DeleteByID(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *cachedGateway) FindByID(ctx context.Context, id category.CategoryID) (*category.Category, error) {
	key := entityKey(id)

	var snap categorySnapshot
	found, err := r.cache.Get(ctx, key, &snap)
	if err != nil {
		logger.Warn("category cache get failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	if found {
		return snap.toEntity(), nil
	}

	entity, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, toSnapshot(entity), r.ttl); err != nil {
		logger.Warn("category cache set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	return entity, nil
}

func (r *cachedGateway) FindAll(ctx context.Context, query category.CategorySearchQuery) (pagination.Pagination[*category.Category], error) {
	key := listKey(query.Normalize())

	var snap pageSnapshot
	found, err := r.cache.Get(ctx, key, &snap)
	if err != nil {
		logger.Warn("category cache get failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	if found {
		items := make([]*category.Category, 0, len(snap.Items))
		for _, s := range snap.Items {
			items = append(items, s.toEntity())
		}
		return pagination.New(snap.Page, snap.Limit, snap.Total, items), nil
	}

	page, err := r.next.FindAll(ctx, query)
	if err != nil {
		return pagination.Pagination[*category.Category]{}, err
	}

	snap = pageSnapshot{Page: page.Page, Limit: page.Limit, Total: page.Total}
	snap.Items = make([]categorySnapshot, 0, len(page.Items))
	for _, c := range page.Items {
		snap.Items = append(snap.Items, toSnapshot(c))
	}
	if err := r.cache.Set(ctx, key, snap, r.ttl); err != nil {
		logger.Warn("category cache set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	return page, nil
}

// invalidate xóa key của entity và toàn bộ list đã cache
func (r *cachedGateway) invalidate(ctx context.Context, id category.CategoryID) {
	if err := r.cache.Delete(ctx, entityKey(id)); err != nil {
		logger.Warn("category cache delete failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
	}
	if err := r.cache.DeletePattern(ctx, cacheListPattern); err != nil {
		logger.Warn("category cache invalidate list failed", map[string]interface{}{"error": fmt.Sprint(err)})
	}
}
