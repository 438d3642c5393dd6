package category

import (
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// ============================================================
// REQUEST DTOs (Input Data)
// ============================================================

// CreateCategoryReq là request body khi POST /api/v1/categories
//
// Name là *string để phân biệt "không gửi"/null với chuỗi rỗng;
// rule về name do CategoryValidator xử lý, không check ở đây.
//
//	Body: {
//	  "name": "Fiction",
//	  "description": "Novels and short stories",
//	  "is_active": true
//	}
type CreateCategoryReq struct {
	Name        *string `json:"name"`
	Description string  `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// Active mặc định true khi client không gửi is_active
func (r CreateCategoryReq) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// UpdateCategoryReq là request body khi PUT /api/v1/categories/:id
// PUT = thay toàn bộ: field không gửi được coi là null/rỗng.
type UpdateCategoryReq struct {
	Name        *string `json:"name"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active"`
}

// ListCategoriesReq bind từ query string:
// GET /api/v1/categories?page=0&limit=10&terms=fic&sort=name&dir=asc
type ListCategoriesReq struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Terms     string `form:"terms"`
	Sort      string `form:"sort"`
	Direction string `form:"dir"`
}

// Validate không phân biệt hoa thường cho sort/dir, giống Normalize
func (r ListCategoriesReq) Validate() error {
	r.Sort = strings.ToLower(strings.TrimSpace(r.Sort))
	r.Direction = strings.ToLower(strings.TrimSpace(r.Direction))

	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Page, ozzo.Min(0).Error("page must not be negative")),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(MaxLimit).Error("limit must not exceed 100")),
		ozzo.Field(&r.Terms, ozzo.RuneLength(0, NameMaxLength)),
		ozzo.Field(&r.Sort,
			ozzo.In(SortByName, SortByCreatedAt, SortByUpdatedAt).
				Error("sort must be one of: name, created_at, updated_at"),
		),
		ozzo.Field(&r.Direction,
			ozzo.In(DirectionAsc, DirectionDesc).Error("dir must be asc or desc"),
		),
	)
}

func (r ListCategoriesReq) ToQuery() CategorySearchQuery {
	return CategorySearchQuery{
		Page:      r.Page,
		Limit:     r.Limit,
		Terms:     r.Terms,
		Sort:      r.Sort,
		Direction: r.Direction,
	}.Normalize()
}

// ============================================================
// RESPONSE DTOs (Output Data)
// ============================================================
type CategoryResp struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

func ToCategoryResp(c *Category) CategoryResp {
	return CategoryResp{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		DeletedAt:   c.DeletedAt(),
	}
}
