package pos

import (
	"net/http"

	"posadmin_server/pos"
	"posadmin_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionHeader carries the opaque id that ties a terminal to its cart.
const SessionHeader = "X-POS-Session"

type PosRoutesManager struct {
	logger         *gecho.Logger
	cartService    *services.CartService
	productService *services.ProductService
	saleService    *services.SaleService
}

func NewPosRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	productService *services.ProductService,
	saleService *services.SaleService,
) *PosRoutesManager {
	return &PosRoutesManager{
		logger:         logger,
		cartService:    cartService,
		productService: productService,
		saleService:    saleService,
	}
}

func (pm *PosRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/pos", func(r chi.Router) {
		r.Get("/cart", pm.GetCart)
		r.Post("/cart/items", pm.AddItem)
		r.Patch("/cart/items", pm.SetQuantity)
		r.Delete("/cart/items/{productId}", pm.RemoveItem)
		r.Put("/cart/customer", pm.SelectCustomer)
		r.Delete("/cart", pm.ResetCart)
		r.Post("/checkout", pm.Checkout)
	})
}

// sessionID reads the cart session header, writing a 400 when absent.
func (pm *PosRoutesManager) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	session := r.Header.Get(SessionHeader)
	if session == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Missing "+SessionHeader+" header"),
			gecho.Send(),
		)
		return "", false
	}
	return session, true
}

type cartEntryView struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type cartView struct {
	Entries    []cartEntryView `json:"entries"`
	CustomerID *uuid.UUID      `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
}

func renderCart(cart *pos.Cart) cartView {
	entries := cart.Entries()
	views := make([]cartEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, cartEntryView{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			UnitPrice: entry.UnitPrice,
			Quantity:  entry.Quantity,
			Subtotal:  entry.Subtotal(),
		})
	}

	return cartView{
		Entries:    views,
		CustomerID: cart.CustomerID(),
		Total:      cart.Total(),
		Count:      cart.Len(),
	}
}
