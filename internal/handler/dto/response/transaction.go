package response

import (
	"travel-booking/internal/usecase/queries"
)

type TransactionResponse struct {
	Date          string `json:"date"`
	Amount        int64  `json:"amount"`
	ReservationID int64  `json:"reservationId"`
	CustomerID    int64  `json:"customerId"`
	Type          string `json:"type"`
}

func FromTransactionViews(views []*queries.TransactionView) []*TransactionResponse {
	resp := make([]*TransactionResponse, len(views))
	for i, view := range views {
		resp[i] = &TransactionResponse{
			Date:          view.Date,
			Amount:        view.Amount,
			ReservationID: view.ReservationID,
			CustomerID:    view.CustomerID,
			Type:          view.Type,
		}
	}
	return resp
}
