package structs

import (
	"time"

	"github.com/google/uuid"
)

// AuthClaims are the claims carried by a POS terminal access token.
type AuthClaims struct {
	Terminal string    `json:"terminal"`
	Iat      time.Time `json:"iat"`
	Exp      time.Time `json:"exp"`
	Jti      uuid.UUID `json:"jti"`
}

type LoginRequest struct {
	Terminal string `json:"terminal" validate:"required,min=2,max=50"`
	Pin      string `json:"pin" validate:"required,min=4,max=12"`
}
