package response

import (
	"log/slog"

	"travel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	RoomType     string  `json:"roomType"`
	NightlyPrice int64   `json:"nightlyPrice"`
	AirportKm    float64 `json:"airportKm"`
}

type FlightResponse struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	Airline       string  `json:"airline"`
	DepartureCity string  `json:"departureCity"`
	StopoverCity  *string `json:"stopoverCity,omitempty"`
	ArrivalCity   string  `json:"arrivalCity"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	TicketClass   string  `json:"ticketClass"`
	Price         int64   `json:"price"`
	Overnight     bool    `json:"overnight"`
}

type TaxiResponse struct {
	ID        int64  `json:"id"`
	City      string `json:"city"`
	TaxiType  string `json:"taxiType"`
	BaseFare  int64  `json:"baseFare"`
	PerKmRate int64  `json:"perKmRate"`
}

type AvailabilityResponse struct {
	ProductID int64  `json:"productId"`
	TimeKey   string `json:"timeKey"`
	Units     int    `json:"units"`
}

func FromHotelView(view *queries.HotelView) *HotelResponse {
	var resp HotelResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map hotel view", "error", err)
	}
	return &resp
}

func FromFlightView(view *queries.FlightView) *FlightResponse {
	var resp FlightResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map flight view", "error", err)
	}
	return &resp
}

func FromTaxiView(view *queries.TaxiView) *TaxiResponse {
	var resp TaxiResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map taxi view", "error", err)
	}
	return &resp
}

func FromHotelViews(views []*queries.HotelView) []*HotelResponse {
	resp := make([]*HotelResponse, len(views))
	for i, view := range views {
		resp[i] = FromHotelView(view)
	}
	return resp
}

func FromFlightViews(views []*queries.FlightView) []*FlightResponse {
	resp := make([]*FlightResponse, len(views))
	for i, view := range views {
		resp[i] = FromFlightView(view)
	}
	return resp
}

func FromTaxiViews(views []*queries.TaxiView) []*TaxiResponse {
	resp := make([]*TaxiResponse, len(views))
	for i, view := range views {
		resp[i] = FromTaxiView(view)
	}
	return resp
}
