package handling

import (
	"net/http/httptest"
	"testing"

	"posadmin_server/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, 0, opts.Page)
	assert.Equal(t, 0, opts.PageSize)
	assert.Empty(t, opts.SearchTerm)
	assert.False(t, opts.LowStockOnly)
}

func TestParseProductListOptionsFull(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?page=2&page_size=25&search=rose&low_stock=true&sort_by=price&sort_direction=desc", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 25, opts.PageSize)
	assert.Equal(t, "rose", opts.SearchTerm)
	assert.True(t, opts.LowStockOnly)
	assert.Equal(t, "price", opts.SortBy)
	assert.Equal(t, database.DESC, opts.SortDirection)
}

func TestParseProductListOptionsRejectsBadNumbers(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?page=abc", nil)
	_, err := ParseProductListOptions(r)
	assert.Error(t, err)

	r = httptest.NewRequest("GET", "/products?low_stock=maybe", nil)
	_, err = ParseProductListOptions(r)
	assert.Error(t, err)
}
