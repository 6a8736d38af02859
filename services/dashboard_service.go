package services

import (
	"context"
	"time"

	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 30 * time.Second
)

// DashboardService aggregates the numbers shown on the admin landing page.
type DashboardService struct {
	logger    *gecho.Logger
	cache     *CacheService
	customers *CustomerService
	products  *ProductService
	sales     *SaleService
}

func NewDashboardService(logger *gecho.Logger, cache *CacheService, customers *CustomerService, products *ProductService, sales *SaleService) *DashboardService {
	return &DashboardService{
		logger:    logger,
		cache:     cache,
		customers: customers,
		products:  products,
		sales:     sales,
	}
}

// GetStats collects customer, product, revenue and low stock counters.
// Today's revenue covers local midnight up to the next midnight. The result
// is cached briefly so dashboard polling does not hammer the database.
func (ds *DashboardService) GetStats(ctx context.Context) (*structs.DashboardStats, error) {
	if ds.cache != nil {
		var cached structs.DashboardStats
		hit, err := ds.cache.GetJSON(dashboardCacheKey, &cached)
		if err != nil {
			ds.logger.Warn("Dashboard cache read failed", gecho.Field("error", err.Error()))
		} else if hit {
			return &cached, nil
		}
	}

	totalCustomers, err := ds.customers.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}

	totalProducts, err := ds.products.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := ds.products.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	revenue, err := ds.sales.SumRevenueBetween(ctx, startOfDay, endOfDay)
	if err != nil {
		return nil, err
	}

	stats := &structs.DashboardStats{
		TotalCustomers: totalCustomers,
		TotalProducts:  totalProducts,
		TodayRevenue:   revenue,
		LowStockCount:  lowStock,
	}

	if ds.cache != nil {
		if err := ds.cache.SetJSON(dashboardCacheKey, stats, dashboardCacheTTL); err != nil {
			ds.logger.Warn("Dashboard cache write failed", gecho.Field("error", err.Error()))
		}
	}

	return stats, nil
}
