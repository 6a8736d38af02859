package products

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

// UpdateProduct handles PUT /products/{id}
func (prm *ProductRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		prm.logger.Warn("Invalid product payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid product data"), gecho.WithData(err.Error()), gecho.Send())
		return
	}

	if body.Price.IsNegative() || body.StockQuantity < 0 {
		gecho.BadRequest(w, gecho.WithMessage("Price and stock must not be negative"), gecho.Send())
		return
	}

	product, err := prm.productService.UpdateProduct(ctx, id, *body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to update product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}
