package response

import (
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
)

type ReservationResponse struct {
	ID         int64  `json:"id"`
	PackageID  int64  `json:"packageId"`
	CustomerID int64  `json:"customerId"`
	Status     string `json:"status"`
	DateStart  string `json:"dateStart"`
	DateEnd    string `json:"dateEnd"`
}

type CancellationResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	RefundTier  string               `json:"refundTier"`
	Refund      int64                `json:"refund"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         view.ID,
		PackageID:  view.PackageID,
		CustomerID: view.CustomerID,
		Status:     view.Status,
		DateStart:  view.DateStart,
		DateEnd:    view.DateEnd,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(views))
	for i, view := range views {
		resp[i] = FromReservationView(view)
	}
	return resp
}

func FromCancellationResult(result *commands.CancelReservationResult) *CancellationResponse {
	return &CancellationResponse{
		Reservation: FromReservationView(result.Reservation),
		RefundTier:  result.Tier.String(),
		Refund:      result.RefundAmount,
	}
}
