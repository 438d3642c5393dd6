package validation

// ThrowsHandler fail fast: lỗi đầu tiên được Append sẽ trả về *DomainError
type ThrowsHandler struct {
	errors []Error
}

func NewThrowsHandler() *ThrowsHandler {
	return &ThrowsHandler{}
}

func (h *ThrowsHandler) Append(err Error) error {
	h.errors = append(h.errors, err)
	return NewDomainError(h.errors)
}

func (h *ThrowsHandler) AppendHandler(other Handler) error {
	if other == nil || !other.HasError() {
		return nil
	}
	h.errors = append(h.errors, other.Errors()...)
	return NewDomainError(h.errors)
}

func (h *ThrowsHandler) Validate(v Validation) error {
	if err := v(); err != nil {
		h.errors = append(h.errors, errorsFrom(err)...)
		return NewDomainError(h.errors)
	}
	return nil
}

func (h *ThrowsHandler) Errors() []Error {
	return h.errors
}

func (h *ThrowsHandler) HasError() bool {
	return hasError(h.errors)
}
