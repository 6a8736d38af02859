package tables

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	tableName struct{}  `bun:"table:customers,alias:c"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull" json:"name" validate:"required,min=1,max=100"`
	Email     *string   `bun:"email" json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string   `bun:"phone" json:"phone,omitempty" validate:"omitempty,max=20"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
