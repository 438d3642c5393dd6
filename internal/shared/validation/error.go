package validation

import "strings"

// Error là một lỗi validation đơn lẻ, chỉ mang message cho người đọc
type Error struct {
	Message string `json:"message"`
}

func NewError(message string) Error {
	return Error{Message: message}
}

func (e Error) Error() string {
	return e.Message
}

// DomainError được trả về khi handler fail-fast gặp lỗi đầu tiên,
// hoặc khi service chuyển một Notification có lỗi thành error.
type DomainError struct {
	errors []Error
}

func NewDomainError(errs []Error) *DomainError {
	copied := make([]Error, len(errs))
	copy(copied, errs)
	return &DomainError{errors: copied}
}

func (e *DomainError) Errors() []Error {
	return e.errors
}

// FirstMessage trả về message đầu tiên, "" nếu không có lỗi
func (e *DomainError) FirstMessage() string {
	if len(e.errors) == 0 {
		return ""
	}
	return e.errors[0].Message
}

// Messages dùng cho response details
func (e *DomainError) Messages() []string {
	out := make([]string, 0, len(e.errors))
	for _, err := range e.errors {
		out = append(out, err.Message)
	}
	return out
}

func (e *DomainError) Error() string {
	if len(e.errors) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Messages(), "; ")
}
