package category

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	SortByName      = "name"
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// CategorySearchQuery là input của CategoryGateway.FindAll.
// Page bắt đầu từ 0.
type CategorySearchQuery struct {
	Page      int
	Limit     int
	Total     int
	Terms     string
	Sort      string
	Direction string
}

// Normalize điền giá trị mặc định cho field rỗng/không hợp lệ
func (q CategorySearchQuery) Normalize() CategorySearchQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if maxPage := MaxPage(q.Limit); q.Page > maxPage {
		q.Page = maxPage
	}

	q.Terms = strings.TrimSpace(q.Terms)

	switch strings.ToLower(strings.TrimSpace(q.Sort)) {
	case SortByCreatedAt:
		q.Sort = SortByCreatedAt
	case SortByUpdatedAt:
		q.Sort = SortByUpdatedAt
	default:
		q.Sort = SortByName
	}

	if strings.EqualFold(strings.TrimSpace(q.Direction), DirectionDesc) {
		q.Direction = DirectionDesc
	} else {
		q.Direction = DirectionAsc
	}

	return q
}

// MaxPage là page lớn nhất mà Offset()+limit không tràn int
func MaxPage(limit int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return math.MaxInt/limit - 1
}

func (q CategorySearchQuery) Offset() int {
	return q.Page * q.Limit
}

// CacheKey dùng làm suffix của key cache list, gọi sau Normalize
func (q CategorySearchQuery) CacheKey() string {
	return fmt.Sprintf("p=%d:l=%d:t=%s:s=%s:d=%s",
		q.Page, q.Limit, strings.ToLower(q.Terms), q.Sort, q.Direction)
}
