package handling

import (
	"net/http"
	"strconv"
	"strings"

	"posadmin_server/database"
	"posadmin_server/services"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}
	var err error
	var valInt int
	var valBool bool

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	if lowStock := query.Get("low_stock"); lowStock != "" {
		if valBool, err = strconv.ParseBool(lowStock); err != nil {
			return nil, err
		}
		opts.LowStockOnly = valBool
	}

	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = database.OrderDirection(strings.ToUpper(sortDirection))
	}

	return opts, nil
}
