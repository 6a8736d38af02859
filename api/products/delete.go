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

// DeleteProduct handles DELETE /products/{id}. Products referenced by sale
// history cannot be removed.
func (prm *ProductRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	if err := prm.productService.DeleteProduct(ctx, id); err != nil {
		switch {
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		case errors.Is(err, lib.ErrReferenced):
			gecho.Conflict(w, gecho.WithMessage("Product appears in sales and cannot be deleted"), gecho.Send())
		default:
			handling.HandleError(err, "Failed to delete product", prm.logger, w)
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
