package category

import (
	"fmt"
	"time"

	"catalog-admin/internal/shared/clock"
	"catalog-admin/internal/shared/validation"
)

// ============================================================
// AGGREGATE ROOT: Category
// ============================================================
// Category là danh mục trong catalog, có soft delete qua deletedAt:
//   - Active:   isActive = true,  deletedAt = nil
//   - Inactive: isActive = false, deletedAt = thời điểm deactivate lần đầu
//
// Tạo bằng NewCategory, thay đổi bằng Update/Activate/Deactivate.
// Constructor KHÔNG validate; caller gọi Validate(handler) trước khi lưu.
//
// Category không an toàn khi dùng đồng thời từ nhiều goroutine.
type Category struct {
	id          CategoryID
	name        *string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

// NewCategory tạo category mới với ID mới và timestamps từ clk
func NewCategory(clk clock.Clock, name *string, description string, isActive bool) *Category {
	now := clk.Now()

	var deletedAt *time.Time
	if !isActive {
		deletedAt = &now
	}

	return &Category{
		id:          NewCategoryID(),
		name:        copyString(name),
		description: description,
		isActive:    isActive,
		createdAt:   now,
		updatedAt:   now,
		deletedAt:   deletedAt,
	}
}

// Restore dựng lại category đã lưu (từ DB/cache), không đụng vào timestamps
func Restore(
	id CategoryID,
	name *string,
	description string,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) *Category {
	return &Category{
		id:          id,
		name:        copyString(name),
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   copyTime(deletedAt),
	}
}

// ========== DOMAIN METHOD: Update ==========
// Activate/Deactivate chạy trước để cập nhật updatedAt/deletedAt,
// sau đó mới ghi đè name/description/isActive.
//
// Update(isActive=false) trên category đã inactive vẫn tăng updatedAt
// nhưng giữ nguyên deletedAt.
func (c *Category) Update(clk clock.Clock, name *string, description string, isActive bool) *Category {
	if isActive {
		c.Activate(clk)
	} else {
		c.Deactivate(clk)
	}

	c.name = copyString(name)
	c.description = description
	c.isActive = isActive

	return c
}

func (c *Category) Activate(clk clock.Clock) {
	c.isActive = true
	c.updatedAt = clk.Now()
	c.deletedAt = nil
}

// Deactivate chỉ set deletedAt lần đầu; gọi lại chỉ tăng updatedAt
func (c *Category) Deactivate(clk clock.Clock) {
	now := clk.Now()

	c.isActive = false
	c.updatedAt = now

	if c.deletedAt == nil {
		c.deletedAt = &now
	}
}

func (c *Category) Validate(handler validation.Handler) error {
	return NewCategoryValidator(c, handler).Validate()
}

// ========== GETTERS ==========

func (c *Category) ID() CategoryID {
	return c.id
}

// Name trả về "" khi name là nil
func (c *Category) Name() string {
	if c.name == nil {
		return ""
	}
	return *c.name
}

// NamePtr phân biệt nil và chuỗi rỗng
func (c *Category) NamePtr() *string {
	return copyString(c.name)
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) IsActive() bool {
	return c.isActive
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) DeletedAt() *time.Time {
	return copyTime(c.deletedAt)
}

func (c *Category) String() string {
	return fmt.Sprintf(
		"Category{ID: %s, Name: %s, IsActive: %v}",
		c.id,
		c.Name(),
		c.isActive,
	)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
