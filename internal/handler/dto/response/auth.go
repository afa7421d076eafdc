package response

import "travel-booking/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                `json:"access_token"`
	Customer    *queries.CustomerView `json:"customer"`
}
