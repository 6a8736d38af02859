package customers

import (
	"errors"
	"net/http"

	"posadmin_server/handling"
	"posadmin_server/lib"
	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateCustomer handles POST /customers
func (crm *CustomerRoutesManager) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := lib.ExtractAndValidateBody[structs.CustomerRequest](r)
	if err != nil {
		crm.logger.Warn("Invalid customer payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer data"), gecho.WithData(err.Error()), gecho.Send())
		return
	}

	customer, err := crm.customerService.CreateCustomer(ctx, body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w, gecho.WithMessage("A customer with these details already exists"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to create customer", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Customer created"),
		gecho.WithData(map[string]any{"customer": customer}),
		gecho.Send(),
	)
}
