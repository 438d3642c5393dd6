package category

import (
	"strings"

	"catalog-admin/internal/shared/validation"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	NameMinLength = 3
	NameMaxLength = 255
)

const (
	MsgNameNull   = "'name' should not be null"
	MsgNameEmpty  = "'name' should not be empty"
	MsgNameLength = "'name' must be between 3 and 255 characters"
)

var _ validation.Validator = (*CategoryValidator)(nil)

// CategoryValidator chỉ kiểm tra field name.
// Mỗi lần Validate append tối đa 1 lỗi: rule đầu tiên fail sẽ return luôn.
type CategoryValidator struct {
	category *Category
	handler  validation.Handler
}

func NewCategoryValidator(category *Category, handler validation.Handler) *CategoryValidator {
	return &CategoryValidator{
		category: category,
		handler:  handler,
	}
}

func (v *CategoryValidator) Validate() error {
	return v.checkNameConstraints()
}

func (v *CategoryValidator) checkNameConstraints() error {
	name := v.category.name

	if err := ozzo.Validate(name, ozzo.NotNil.Error(MsgNameNull)); err != nil {
		return v.handler.Append(validation.NewError(err.Error()))
	}

	trimmed := strings.TrimSpace(*name)

	if err := ozzo.Validate(trimmed, ozzo.Required.Error(MsgNameEmpty)); err != nil {
		return v.handler.Append(validation.NewError(err.Error()))
	}

	rule := ozzo.RuneLength(NameMinLength, NameMaxLength).Error(MsgNameLength)
	if err := ozzo.Validate(trimmed, rule); err != nil {
		return v.handler.Append(validation.NewError(err.Error()))
	}

	return nil
}
