package pagination

// Pagination là kết quả phân trang của một truy vấn danh sách
type Pagination[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

func New[T any](page, limit int, total int64, items []T) Pagination[T] {
	if items == nil {
		items = []T{}
	}
	return Pagination[T]{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: items,
	}
}

// Map giữ nguyên page/limit/total, chuyển từng item qua fn (vd: entity -> response DTO)
func Map[T, R any](p Pagination[T], fn func(T) R) Pagination[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Pagination[R]{
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
		Items: items,
	}
}

// TotalPages trả về số trang, 0 khi limit <= 0
func (p Pagination[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
