package services

import (
	"posadmin_server/database"
	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService      *AuthService
	EmailService     *EmailService
	CacheService     *CacheService
	HealthService    *HealthService
	CustomerService  *CustomerService
	ProductService   *ProductService
	SaleService      *SaleService
	CartService      *CartService
	DashboardService *DashboardService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(logger, cfg)
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	customerService := NewCustomerService(logger, db)
	productService := NewProductService(logger, db, cacheService, cfg)
	saleService := NewSaleService(logger, db, NewSaleRepository(db), customerService, emailService)
	cartService := NewCartService(logger, cfg, customerService)
	dashboardService := NewDashboardService(logger, cacheService, customerService, productService, saleService)

	return &ServiceManager{
		AuthService:      authService,
		EmailService:     emailService,
		CacheService:     cacheService,
		HealthService:    healthService,
		CustomerService:  customerService,
		ProductService:   productService,
		SaleService:      saleService,
		CartService:      cartService,
		DashboardService: dashboardService,
	}
}
