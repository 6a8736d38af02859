package structs

// CustomerRequest is the payload for creating or updating a customer.
// Blank email/phone are persisted as NULL, not as empty strings.
type CustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}
