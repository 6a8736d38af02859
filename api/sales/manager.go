package sales

import (
	"posadmin_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SaleRoutesManager struct {
	logger      *gecho.Logger
	saleService *services.SaleService
}

func NewSaleRoutesManager(
	logger *gecho.Logger,
	saleService *services.SaleService,
) *SaleRoutesManager {
	return &SaleRoutesManager{
		logger:      logger,
		saleService: saleService,
	}
}

func (srm *SaleRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/sales", func(r chi.Router) {
		r.Get("/", srm.FetchSales)
		r.Get("/{id}", srm.FetchSaleDetails)
	})
}
