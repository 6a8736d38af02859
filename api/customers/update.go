package customers

import (
	"errors"
	"net/http"

	"posadmin_server/handling"
	"posadmin_server/lib"
	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UpdateCustomer handles PUT /customers/{id}
func (crm *CustomerRoutesManager) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CustomerRequest](r)
	if err != nil {
		crm.logger.Warn("Invalid customer payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer data"), gecho.WithData(err.Error()), gecho.Send())
		return
	}

	if err := crm.customerService.UpdateCustomer(ctx, id, body); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Customer not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to update customer", crm.logger, w)
		return
	}

	customer, err := crm.customerService.GetCustomerByID(ctx, id)
	if err != nil {
		handling.HandleError(err, "Failed to fetch updated customer", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Customer updated"),
		gecho.WithData(map[string]any{"customer": customer}),
		gecho.Send(),
	)
}
