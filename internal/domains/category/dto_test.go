package category_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"catalog-admin/internal/domains/category"
	"catalog-admin/internal/shared/validation"

	"github.com/stretchr/testify/assert"
)

func TestListCategoriesReq_Validate(t *testing.T) {
	assert.NoError(t, category.ListCategoriesReq{}.Validate())
	assert.NoError(t, category.ListCategoriesReq{Page: 1, Limit: 50, Sort: "updated_at", Direction: "desc"}.Validate())

	assert.Error(t, category.ListCategoriesReq{Page: -1}.Validate())
	assert.Error(t, category.ListCategoriesReq{Limit: 101}.Validate())
	assert.Error(t, category.ListCategoriesReq{Sort: "slug"}.Validate())
	assert.Error(t, category.ListCategoriesReq{Direction: "up"}.Validate())
}

func TestListCategoriesReq_ValidateIgnoresCase(t *testing.T) {
	req := category.ListCategoriesReq{Sort: "Created_At", Direction: "DESC"}

	assert.NoError(t, req.Validate())

	q := req.ToQuery()
	assert.Equal(t, category.SortByCreatedAt, q.Sort)
	assert.Equal(t, category.DirectionDesc, q.Direction)
}

func TestListCategoriesReq_HugePageIsClamped(t *testing.T) {
	req := category.ListCategoriesReq{Page: 922337203685477581, Limit: 10}

	assert.NoError(t, req.Validate())
	assert.Equal(t, category.MaxPage(10), req.ToQuery().Page)
}

func TestCreateCategoryReq_ActiveDefaultsToTrue(t *testing.T) {
	assert.True(t, category.CreateCategoryReq{}.Active())

	inactive := false
	assert.False(t, category.CreateCategoryReq{IsActive: &inactive}.Active())
}

func TestToCategoryResp(t *testing.T) {
	c := category.NewCategory(newClock(), strPtr("Poetry"), "Verse", false)

	resp := category.ToCategoryResp(c)

	assert.Equal(t, c.ID().String(), resp.ID)
	assert.Equal(t, "Poetry", resp.Name)
	assert.Equal(t, "Verse", resp.Description)
	assert.False(t, resp.IsActive)
	assert.NotNil(t, resp.DeletedAt)
}

func TestGetHTTPStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{category.NewNotFoundError(category.NewCategoryID()), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", category.ErrDuplicateCategory), http.StatusConflict},
		{category.ErrInvalidCategoryID, http.StatusBadRequest},
		{validation.NewDomainError([]validation.Error{validation.NewError(category.MsgNameNull)}), http.StatusUnprocessableEntity},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, category.GetHTTPStatusCode(tc.err), tc.err.Error())
	}
}

func TestGetErrorMessage_HidesInternalErrors(t *testing.T) {
	assert.Equal(t, "Internal server error", category.GetErrorMessage(errors.New("pq: connection refused")))
	assert.Equal(t, "Category not found", category.GetErrorMessage(category.ErrCategoryNotFound))
	assert.Equal(t, "", category.GetErrorMessage(nil))
	assert.True(t, category.IsNotFound(category.NewNotFoundError("x")))
}
