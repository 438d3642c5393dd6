package pagination_test

import (
	"strconv"
	"testing"

	"catalog-admin/internal/shared/pagination"

	"github.com/stretchr/testify/assert"
)

func TestNew_NilItemsBecomeEmpty(t *testing.T) {
	p := pagination.New[int](0, 10, 0, nil)

	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}

func TestMap_KeepsMetadataAndOrder(t *testing.T) {
	p := pagination.New(2, 3, 42, []int{1, 2, 3})

	out := pagination.Map(p, strconv.Itoa)

	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 3, out.Limit)
	assert.Equal(t, int64(42), out.Total)
	assert.Equal(t, []string{"1", "2", "3"}, out.Items)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, pagination.New[int](0, 0, 10, nil).TotalPages())
	assert.Equal(t, 1, pagination.New[int](0, 10, 10, nil).TotalPages())
	assert.Equal(t, 2, pagination.New[int](0, 10, 11, nil).TotalPages())
	assert.Equal(t, 0, pagination.New[int](0, 10, 0, nil).TotalPages())
}
