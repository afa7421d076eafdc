package response

import (
	"log/slog"

	"travel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PackageResponse struct {
	ID              int64  `json:"id"`
	Kind            string `json:"kind"`
	HotelID         int64  `json:"hotelId"`
	FlightID        int64  `json:"flightId"`
	TaxiID          int64  `json:"taxiId"`
	DateStart       string `json:"dateStart"`
	DateEnd         string `json:"dateEnd"`
	Nights          int    `json:"nights"`
	TotalCost       int64  `json:"totalCost"`
	DiscountedPrice int64  `json:"discountedPrice"`
}

func FromPackageView(view *queries.PackageView) *PackageResponse {
	var resp PackageResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map package view", "error", err)
	}
	return &resp
}

func FromPackageViews(views []*queries.PackageView) []*PackageResponse {
	resp := make([]*PackageResponse, len(views))
	for i, view := range views {
		resp[i] = FromPackageView(view)
	}
	return resp
}
