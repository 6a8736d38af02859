package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	tableName     struct{}        `bun:"table:products,alias:p"`
	ID            uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name          string          `bun:"name,notnull" json:"name" validate:"required,min=1,max=200"`
	Description   *string         `bun:"description" json:"description,omitempty"`
	Price         decimal.Decimal `bun:"price,notnull" json:"price"`                   // non-negative
	StockQuantity int             `bun:"stock_quantity,notnull" json:"stock_quantity"` // non-negative
	CreatedAt     time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt     time.Time       `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
