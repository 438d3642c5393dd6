package validation

// Notification gom tất cả lỗi lại, caller tự kiểm tra HasError() sau khi validate
type Notification struct {
	errors []Error
}

func NewNotification() *Notification {
	return &Notification{errors: make([]Error, 0)}
}

func (n *Notification) Append(err Error) error {
	n.errors = append(n.errors, err)
	return nil
}

func (n *Notification) AppendHandler(other Handler) error {
	if other == nil {
		return nil
	}
	n.errors = append(n.errors, other.Errors()...)
	return nil
}

// Validate chạy v và ghi lại lỗi (nếu có). Không bao giờ trả về error.
func (n *Notification) Validate(v Validation) error {
	if err := v(); err != nil {
		n.errors = append(n.errors, errorsFrom(err)...)
	}
	return nil
}

func (n *Notification) Errors() []Error {
	return n.errors
}

func (n *Notification) HasError() bool {
	return hasError(n.errors)
}

// Err trả về *DomainError nếu có lỗi, nil nếu không
func (n *Notification) Err() error {
	if !n.HasError() {
		return nil
	}
	return NewDomainError(n.errors)
}
