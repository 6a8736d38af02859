package structs

import "github.com/shopspring/decimal"

// ProductRequest is the payload for creating or updating a product.
// Price and stock bounds are re-checked in the service layer so the
// rules hold even for callers that bypass the HTTP edge.
type ProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"omitempty,max=1000"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
}
