package products

import (
	"errors"
	"net/http"

	"posadmin_server/handling"
	"posadmin_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchAllProducts handles GET /products with pagination, search and sorting
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := prm.productService.GetAllProducts(ctx, *opts)
	if err != nil {
		handling.HandleError(err, "Failed to fetch products", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id}
func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	product, err := prm.productService.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to fetch product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}
