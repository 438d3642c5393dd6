package validation

import "errors"

// ============================================================
// VALIDATION HANDLER CONTRACT
// ============================================================
// Handler nhận lỗi từ validator. Có 2 biến thể:
//   - Notification: gom tất cả lỗi, không bao giờ fail fast
//   - ThrowsHandler: trả về *DomainError ngay lần Append đầu tiên
//
// Validator luôn return sớm khi Append trả về error khác nil.
type Handler interface {
	Append(err Error) error
	AppendHandler(other Handler) error
	Validate(v Validation) error
	Errors() []Error
	HasError() bool
}

// Validation là một bước kiểm tra bất kỳ; error trả về sẽ được ghi vào handler
type Validation func() error

// Validator kiểm tra một entity và báo lỗi vào handler mà nó giữ
type Validator interface {
	Validate() error
}

// hasError: true khi list không rỗng
func hasError(errs []Error) bool {
	return len(errs) > 0
}

// errorsFrom chuyển error bất kỳ thành danh sách Error.
// *DomainError giữ nguyên danh sách, error khác thành 1 phần tử.
func errorsFrom(err error) []Error {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Errors()
	}
	var single Error
	if errors.As(err, &single) {
		return []Error{single}
	}
	return []Error{NewError(err.Error())}
}
