package category

import (
	"strings"

	"github.com/google/uuid"
)

// ============================================================
// VALUE OBJECT: CategoryID
// ============================================================
// CategoryID là định danh của Category, lưu dạng chuỗi UUID viết thường.
// So sánh bằng value (==), dùng được làm key của map.
type CategoryID string

// NewCategoryID sinh UUID v4 mới
func NewCategoryID() CategoryID {
	return CategoryIDFromUUID(uuid.New())
}

func CategoryIDFrom(value string) CategoryID {
	return CategoryID(value)
}

func CategoryIDFromUUID(id uuid.UUID) CategoryID {
	return CategoryID(strings.ToLower(id.String()))
}

// ParseCategoryID dùng cho input từ bên ngoài (path param, JSON)
func ParseCategoryID(raw string) (CategoryID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidCategoryID
	}
	return CategoryIDFromUUID(id), nil
}

func (id CategoryID) String() string {
	return string(id)
}

func (id CategoryID) IsZero() bool {
	return id == ""
}
