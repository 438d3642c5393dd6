package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"catalog-admin/internal/domains/category"
	"catalog-admin/internal/shared/pagination"
)

// memoryGateway lưu category trong map, dùng cho local dev (STORAGE_DRIVER=memory) và test.
// Mỗi lần đọc/ghi đều copy entity để caller không sửa được state bên trong.
type memoryGateway struct {
	mu    sync.RWMutex
	items map[category.CategoryID]*category.Category
}

func NewMemoryGateway() category.CategoryGateway {
	return &memoryGateway{
		items: make(map[category.CategoryID]*category.Category),
	}
}

func (r *memoryGateway) Create(_ context.Context, entity *category.Category) (*category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[entity.ID()]; exists {
		return nil, category.ErrDuplicateCategory
	}

	r.items[entity.ID()] = clone(entity)
	return clone(entity), nil
}

func (r *memoryGateway) Update(_ context.Context, entity *category.Category) (*category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[entity.ID()]
	if !exists {
		return nil, category.NewNotFoundError(entity.ID())
	}

	// created_at lấy từ bản đã lưu, giống UPDATE của postgres
	stored := category.Restore(
		entity.ID(),
		entity.NamePtr(),
		entity.Description(),
		entity.IsActive(),
		current.CreatedAt(),
		entity.UpdatedAt(),
		entity.DeletedAt(),
	)
	r.items[entity.ID()] = stored
	return clone(stored), nil
}

func (r *memoryGateway) FindByID(_ context.Context, id category.CategoryID) (*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.items[id]
	if !exists {
		return nil, category.NewNotFoundError(id)
	}
	return clone(entity), nil
}

func (r *memoryGateway) FindAll(_ context.Context, query category.CategorySearchQuery) (pagination.Pagination[*category.Category], error) {
	q := query.Normalize()
	terms := strings.ToLower(q.Terms)

	r.mu.RLock()
	matched := make([]*category.Category, 0, len(r.items))
	for _, entity := range r.items {
		if terms != "" &&
			!strings.Contains(strings.ToLower(entity.Name()), terms) &&
			!strings.Contains(strings.ToLower(entity.Description()), terms) {
			continue
		}
		matched = append(matched, entity)
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return less(matched[i], matched[j], q.Sort, q.Direction == category.DirectionDesc)
	})

	total := int64(len(matched))
	start := q.Offset()
	if start < 0 || start > len(matched) {
		start = len(matched)
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}

	items := make([]*category.Category, 0, end-start)
	for _, entity := range matched[start:end] {
		items = append(items, clone(entity))
	}

	return pagination.New(q.Page, q.Limit, total, items), nil
}

func (r *memoryGateway) DeleteByID(_ context.Context, id category.CategoryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

// less so sánh theo field sort, hòa thì so id để thứ tự ổn định
func less(a, b *category.Category, field string, desc bool) bool {
	var cmp int
	switch field {
	case category.SortByCreatedAt:
		cmp = a.CreatedAt().Compare(b.CreatedAt())
	case category.SortByUpdatedAt:
		cmp = a.UpdatedAt().Compare(b.UpdatedAt())
	default:
		cmp = strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	}

	if cmp == 0 {
		return a.ID() < b.ID()
	}
	if desc {
		return cmp > 0
	}
	return cmp < 0
}

func clone(c *category.Category) *category.Category {
	return category.Restore(
		c.ID(),
		c.NamePtr(),
		c.Description(),
		c.IsActive(),
		c.CreatedAt(),
		c.UpdatedAt(),
		c.DeletedAt(),
	)
}
