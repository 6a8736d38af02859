package products

import (
	"posadmin_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", prm.FetchAllProducts)
		r.Get("/{id}", prm.FetchProductByID)
		r.Post("/", prm.CreateProduct)
		r.Put("/{id}", prm.UpdateProduct)
		r.Delete("/{id}", prm.DeleteProduct)
	})
}
