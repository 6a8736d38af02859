package pos

import (
	"net/http"

	"posadmin_server/api/health"
	"posadmin_server/handling"
	"posadmin_server/pos"
	"posadmin_server/services"

	"github.com/MonkyMars/gecho"
)

// Checkout handles POST /pos/checkout. The workflow outcome collapses to a
// success flag and a message; operator-recoverable rejections (empty cart,
// missing customer) come back as 400, infrastructure failures as 500.
func (pm *PosRoutesManager) Checkout(w http.ResponseWriter, r *http.Request) {
	session, ok := pm.sessionID(w, r)
	if !ok {
		return
	}

	var result services.SaleResult
	err := pm.cartService.WithCart(r.Context(), session, func(cart *pos.Cart) error {
		result = pm.saleService.Checkout(r.Context(), cart)
		return nil
	})
	if err != nil {
		handling.HandleError(err, "Checkout failed", pm.logger, w)
		return
	}

	switch result.Status {
	case services.SaleSucceeded:
		health.SalesCompleted.Inc()
		gecho.Success(w,
			gecho.WithMessage(result.Message),
			gecho.WithData(map[string]any{"sale": result.Sale}),
			gecho.Send(),
		)
	case services.SaleAborted:
		health.SalesFailed.WithLabelValues(string(result.Code)).Inc()
		gecho.BadRequest(w,
			gecho.WithMessage(result.Message),
			gecho.Send(),
		)
	default:
		health.SalesFailed.WithLabelValues(string(result.Code)).Inc()
		pm.logger.Error("Sale workflow failed",
			gecho.Field("code", string(result.Code)),
			gecho.Field("message", result.Message),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage(result.Message),
			gecho.Send(),
		)
	}
}
