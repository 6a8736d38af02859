package sales

import (
	"net/http"

	"posadmin_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchSales handles GET /sales, newest first
func (srm *SaleRoutesManager) FetchSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sales, err := srm.saleService.GetSales(ctx)
	if err != nil {
		handling.HandleError(err, "Failed to fetch sales", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"sales": sales,
			"count": len(sales),
		}),
		gecho.Send(),
	)
}

// FetchSaleDetails handles GET /sales/{id}, including line items with their
// product names and the customer
func (srm *SaleRoutesManager) FetchSaleDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid sale id"), gecho.Send())
		return
	}

	sale, err := srm.saleService.GetSaleDetails(ctx, id)
	if err != nil {
		handling.HandleError(err, "Failed to fetch sale", srm.logger, w)
		return
	}
	if sale == nil {
		gecho.NotFound(w, gecho.WithMessage("Sale not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"sale": sale}),
		gecho.Send(),
	)
}
