package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"catalog-admin/internal/domains/category"
	"catalog-admin/internal/domains/category/repository"
	"catalog-admin/internal/shared/clock"
	"catalog-admin/internal/shared/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

func seed(t *testing.T, gw category.CategoryGateway, clk clock.Clock, names ...string) []*category.Category {
	t.Helper()

	out := make([]*category.Category, 0, len(names))
	for _, name := range names {
		c, err := gw.Create(context.Background(), category.NewCategory(clk, strPtr(name), name+" description", true))
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestMemoryGateway_CreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemoryGateway()
	c := category.NewCategory(clock.Fixed(testStart), strPtr("Movies"), "Films", true)

	created, err := gw.Create(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, c.ID(), created.ID())

	found, err := gw.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Movies", found.Name())
	assert.Equal(t, "Films", found.Description())
	assert.True(t, found.IsActive())
	assert.Equal(t, testStart, found.CreatedAt())
}

func TestMemoryGateway_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemoryGateway()
	c := category.NewCategory(clock.Fixed(testStart), strPtr("Movies"), "", true)

	_, err := gw.Create(ctx, c)
	require.NoError(t, err)

	_, err = gw.Create(ctx, c)
	assert.ErrorIs(t, err, category.ErrDuplicateCategory)
}

func TestMemoryGateway_FindByID_NotFound(t *testing.T) {
	gw := repository.NewMemoryGateway()

	_, err := gw.FindByID(context.Background(), category.NewCategoryID())

	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestMemoryGateway_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewStepping(testStart, time.Second)
	gw := repository.NewMemoryGateway()
	c := seed(t, gw, clk, "Movies")[0]

	// sửa entity ngoài gateway không ảnh hưởng bản đã lưu
	c.Deactivate(clk)

	found, err := gw.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.True(t, found.IsActive())
	assert.Nil(t, found.DeletedAt())
}

func TestMemoryGateway_Update(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewStepping(testStart, time.Second)
	gw := repository.NewMemoryGateway()
	c := seed(t, gw, clk, "Movies")[0]

	c.Update(clk, strPtr("Series"), "TV", false)
	updated, err := gw.Update(ctx, c)
	require.NoError(t, err)

	assert.Equal(t, "Series", updated.Name())
	assert.False(t, updated.IsActive())
	assert.NotNil(t, updated.DeletedAt())
	assert.Equal(t, c.CreatedAt(), updated.CreatedAt())
	assert.True(t, updated.UpdatedAt().After(updated.CreatedAt()))
}

func TestMemoryGateway_Update_NotFound(t *testing.T) {
	gw := repository.NewMemoryGateway()
	c := category.NewCategory(clock.Fixed(testStart), strPtr("Movies"), "", true)

	_, err := gw.Update(context.Background(), c)

	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestMemoryGateway_DeleteByID(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemoryGateway()
	c := seed(t, gw, clock.Fixed(testStart), "Movies")[0]

	require.NoError(t, gw.DeleteByID(ctx, c.ID()))
	_, err := gw.FindByID(ctx, c.ID())
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)

	// id không tồn tại: no-op
	assert.NoError(t, gw.DeleteByID(ctx, c.ID()))
}

func TestMemoryGateway_FindAll_TermsAndSort(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemoryGateway()
	seed(t, gw, clock.NewStepping(testStart, time.Second), "Movies", "documentaries", "Music", "Books")

	page, err := gw.FindAll(ctx, category.CategorySearchQuery{Terms: "MU"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Music", page.Items[0].Name())
	assert.EqualValues(t, 1, page.Total)

	page, err = gw.FindAll(ctx, category.CategorySearchQuery{})
	require.NoError(t, err)
	names := make([]string, 0, len(page.Items))
	for _, c := range page.Items {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"Books", "documentaries", "Movies", "Music"}, names)

	page, err = gw.FindAll(ctx, category.CategorySearchQuery{Sort: "created_at", Direction: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "Books", page.Items[0].Name())
	assert.Equal(t, "Movies", page.Items[3].Name())
}

func TestMemoryGateway_FindAll_Pagination(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemoryGateway()
	clk := clock.NewStepping(testStart, time.Second)
	for i := 0; i < 7; i++ {
		seed(t, gw, clk, fmt.Sprintf("Category %02d", i))
	}

	page, err := gw.FindAll(ctx, category.CategorySearchQuery{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.Limit)
	assert.EqualValues(t, 7, page.Total)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Category 03", page.Items[0].Name())

	page, err = gw.FindAll(ctx, category.CategorySearchQuery{Page: 5, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.EqualValues(t, 7, page.Total)
}

func TestMemoryGateway_FindAll_HugePageReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemoryGateway()
	seed(t, gw, clock.NewStepping(testStart, time.Second), "Books", "Movies")

	var (
		page pagination.Pagination[*category.Category]
		err  error
	)
	require.NotPanics(t, func() {
		page, err = gw.FindAll(ctx, category.CategorySearchQuery{Page: 922337203685477581, Limit: 10})
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, category.MaxPage(10), page.Page)
}
