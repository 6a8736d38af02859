package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the transaction header. TotalAmount is computed from the cart
// at submission time and never recomputed from stored sale items.
type Sale struct {
	tableName   struct{}        `bun:"table:sales,alias:s"`
	ID          uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CustomerID  uuid.UUID       `bun:"customer_id,notnull,type:uuid" json:"customer_id"`
	TotalAmount decimal.Decimal `bun:"total_amount,notnull" json:"total_amount"`
	SaleDate    time.Time       `bun:"sale_date,notnull,default:now()" json:"sale_date"`

	Customer *Customer  `bun:"rel:belongs-to,join:customer_id=id" json:"customer,omitempty"`
	Items    []SaleItem `bun:"rel:has-many,join:id=sale_id" json:"items,omitempty"`
}

// SaleItem is one priced line of a sale. Rows are insert-only; after a
// sale commits they are never updated.
type SaleItem struct {
	tableName struct{}        `bun:"table:sale_items,alias:si"`
	ID        uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	SaleID    uuid.UUID       `bun:"sale_id,notnull,type:uuid" json:"sale_id"`
	ProductID uuid.UUID       `bun:"product_id,notnull,type:uuid" json:"product_id"`
	Quantity  int             `bun:"quantity,notnull" json:"quantity"`     // positive
	UnitPrice decimal.Decimal `bun:"unit_price,notnull" json:"unit_price"` // product price snapshot at sale time

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}
