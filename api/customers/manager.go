package customers

import (
	"posadmin_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CustomerRoutesManager struct {
	logger          *gecho.Logger
	customerService *services.CustomerService
}

func NewCustomerRoutesManager(
	logger *gecho.Logger,
	customerService *services.CustomerService,
) *CustomerRoutesManager {
	return &CustomerRoutesManager{
		logger:          logger,
		customerService: customerService,
	}
}

func (crm *CustomerRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", crm.FetchCustomers)
		r.Get("/{id}", crm.FetchCustomerByID)
		r.Post("/", crm.CreateCustomer)
		r.Put("/{id}", crm.UpdateCustomer)
		r.Delete("/{id}", crm.DeleteCustomer)
	})
}
