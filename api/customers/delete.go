package customers

import (
	"errors"
	"net/http"

	"posadmin_server/handling"
	"posadmin_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DeleteCustomer handles DELETE /customers/{id}. Customers with recorded
// sales cannot be removed.
func (crm *CustomerRoutesManager) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer id"), gecho.Send())
		return
	}

	if err := crm.customerService.DeleteCustomer(ctx, id); err != nil {
		switch {
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage("Customer not found"), gecho.Send())
		case errors.Is(err, lib.ErrReferenced):
			gecho.Conflict(w, gecho.WithMessage("Customer has sales and cannot be deleted"), gecho.Send())
		default:
			handling.HandleError(err, "Failed to delete customer", crm.logger, w)
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Customer deleted"),
		gecho.Send(),
	)
}
