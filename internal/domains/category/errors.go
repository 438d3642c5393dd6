package category

import (
	"errors"
	"fmt"
	"net/http"

	"catalog-admin/internal/shared/validation"
)

// ============================================================
// SENTINEL ERRORS
// ============================================================
// So sánh bằng errors.Is(); layer dưới wrap bằng fmt.Errorf("%w")
//
// ERROR FLOW:
// Gateway (pgx.ErrNoRows) => ErrCategoryNotFound
// Service                  => propagate / wrap
// Handler                  => GetHTTPStatusCode(err) => 404

var ErrCategoryNotFound = errors.New("category not found")

var ErrInvalidCategoryID = errors.New("invalid category id")

// ErrDuplicateCategory: vi phạm unique constraint ở DB
var ErrDuplicateCategory = errors.New("category already exists")

var ErrInvalidSearchQuery = errors.New("invalid category search query")

// NewNotFoundError thêm ID vào message, vẫn giữ chain cho errors.Is
//
// RESULT:
// "category not found: id 123e4567-e89b-12d3-a456-426614174000"
func NewNotFoundError(id CategoryID) error {
	return fmt.Errorf("%w: id %s", ErrCategoryNotFound, id)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

func IsValidationError(err error) bool {
	var domainErr *validation.DomainError
	return errors.As(err, &domainErr)
}

// ============================================================
// ERROR CODE MAPPING (For HTTP Responses)
// ============================================================
// ErrCategoryNotFound   => 404
// ErrDuplicateCategory  => 409
// ErrInvalidCategoryID  => 400
// *DomainError          => 422
func GetHTTPStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateCategory):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCategoryID), errors.Is(err, ErrInvalidSearchQuery):
		return http.StatusBadRequest
	case IsValidationError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorCode trả về code cho response envelope
func GetErrorCode(err error) string {
	switch GetHTTPStatusCode(err) {
	case http.StatusNotFound:
		return "CATEGORY_NOT_FOUND"
	case http.StatusConflict:
		return "CATEGORY_CONFLICT"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// GetErrorMessage không để lộ lỗi nội bộ ra client
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	switch GetHTTPStatusCode(err) {
	case http.StatusNotFound:
		return "Category not found"
	case http.StatusConflict:
		return "Category already exists"
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return err.Error()
	default:
		return "Internal server error"
	}
}
