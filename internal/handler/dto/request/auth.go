package request

import (
	"travel-booking/internal/domain/customer"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (customer.Credentials, error) {
	return customer.NewCredentials(r.Username, r.Password)
}
