package structs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// QuantityRequest applies a delta to a cart entry's quantity.
// A resulting quantity of zero or less removes the entry.
type QuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Delta     int       `json:"delta" validate:"required"`
}

type SelectCustomerRequest struct {
	CustomerID uuid.UUID `json:"customer_id" validate:"required"`
}

type DashboardStats struct {
	TotalCustomers int             `json:"total_customers"`
	TotalProducts  int             `json:"total_products"`
	TodayRevenue   decimal.Decimal `json:"today_revenue"`
	LowStockCount  int             `json:"low_stock_count"`
}
