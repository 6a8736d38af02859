package products

import (
	"net/http"

	"posadmin_server/handling"
	"posadmin_server/lib"
	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateProduct handles POST /products
func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

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

	product, err := prm.productService.CreateProduct(ctx, *body)
	if err != nil {
		handling.HandleError(err, "Failed to create product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}
