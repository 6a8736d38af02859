package api

import (
	"posadmin_server/api/auth"
	"posadmin_server/api/customers"
	"posadmin_server/api/dashboard"
	"posadmin_server/api/health"
	"posadmin_server/api/middleware"
	posapi "posadmin_server/api/pos"
	"posadmin_server/api/products"
	"posadmin_server/api/sales"
	"posadmin_server/database"
	"posadmin_server/services"
	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	mw              *middleware.Middleware
	authRoutes      *auth.AuthRoutesManager
	customerRoutes  *customers.CustomerRoutesManager
	productRoutes   *products.ProductRoutesManager
	posRoutes       *posapi.PosRoutesManager
	saleRoutes      *sales.SaleRoutesManager
	dashboardRoutes *dashboard.DashboardRoutesManager
	healthRoutes    *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, db *database.DB, cfg *structs.Config, mw *middleware.Middleware, sm *services.ServiceManager) *routerManager {
	return &routerManager{
		mw:              mw,
		authRoutes:      auth.NewAuthRoutesManager(logger, sm.AuthService, cfg),
		customerRoutes:  customers.NewCustomerRoutesManager(logger, sm.CustomerService),
		productRoutes:   products.NewProductRoutesManager(logger, sm.ProductService),
		posRoutes:       posapi.NewPosRoutesManager(logger, sm.CartService, sm.ProductService, sm.SaleService),
		saleRoutes:      sales.NewSaleRoutesManager(logger, sm.SaleService),
		dashboardRoutes: dashboard.NewDashboardRoutesManager(logger, sm.DashboardService),
		healthRoutes:    health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	// Public surface: login and operational probes
	rm.authRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)

	// Everything else requires a logged-in terminal
	r.Group(func(r chi.Router) {
		r.Use(rm.mw.TerminalAuthMiddleware)
		rm.customerRoutes.RegisterRoutes(r)
		rm.productRoutes.RegisterRoutes(r)
		rm.posRoutes.RegisterRoutes(r)
		rm.saleRoutes.RegisterRoutes(r)
		rm.dashboardRoutes.RegisterRoutes(r)
	})
}
