package customers

import (
	"net/http"

	"posadmin_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchCustomers handles GET /customers, ordered by name
func (crm *CustomerRoutesManager) FetchCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := crm.customerService.GetCustomers(ctx)
	if err != nil {
		handling.HandleError(err, "Failed to fetch customers", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"customers": customers,
			"count":     len(customers),
		}),
		gecho.Send(),
	)
}

// FetchCustomerByID handles GET /customers/{id}
func (crm *CustomerRoutesManager) FetchCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer id"), gecho.Send())
		return
	}

	customer, err := crm.customerService.GetCustomerByID(ctx, id)
	if err != nil {
		handling.HandleError(err, "Failed to fetch customer", crm.logger, w)
		return
	}
	if customer == nil {
		gecho.NotFound(w, gecho.WithMessage("Customer not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"customer": customer}),
		gecho.Send(),
	)
}
