package repository

import (
	"testing"

	"catalog-admin/internal/domains/category"

	"github.com/stretchr/testify/assert"
)

func TestBuildFindAllQuery_NoTerms(t *testing.T) {
	q := category.CategorySearchQuery{}.Normalize()

	listSQL, countSQL, args := buildFindAllQuery(q)

	assert.Equal(t, "SELECT COUNT(*) FROM categories", countSQL)
	assert.Contains(t, listSQL, "FROM categories ORDER BY name ASC, id ASC LIMIT $1 OFFSET $2")
	assert.NotContains(t, listSQL, "WHERE")
	assert.Empty(t, args)
}

func TestBuildFindAllQuery_WithTerms(t *testing.T) {
	q := category.CategorySearchQuery{
		Page:      2,
		Limit:     5,
		Terms:     "  film ",
		Sort:      "created_at",
		Direction: "DESC",
	}.Normalize()

	listSQL, countSQL, args := buildFindAllQuery(q)

	assert.Equal(t,
		"SELECT COUNT(*) FROM categories WHERE (name ILIKE $1 OR description ILIKE $1)", countSQL)
	assert.Contains(t, listSQL,
		"WHERE (name ILIKE $1 OR description ILIKE $1) ORDER BY created_at DESC, id ASC LIMIT $2 OFFSET $3")
	assert.Equal(t, []interface{}{"%film%"}, args)
}

func TestBuildFindAllQuery_UnknownSortFallsBackToName(t *testing.T) {
	q := category.CategorySearchQuery{Sort: "name; DROP TABLE categories"}.Normalize()

	listSQL, _, _ := buildFindAllQuery(q)

	assert.Contains(t, listSQL, "ORDER BY name ASC")
	assert.NotContains(t, listSQL, "DROP")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}
