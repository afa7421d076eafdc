package request

type CreateHotelRequest struct {
	Name         string  `json:"name" binding:"required"`
	City         string  `json:"city" binding:"required"`
	RoomType     string  `json:"roomType" binding:"required"`
	Capacity     int     `json:"capacity" binding:"required,gt=0"`
	NightlyPrice int64   `json:"nightlyPrice" binding:"required,gt=0"`
	AirportKm    float64 `json:"airportKm" binding:"gte=0"`
}

// CreateFlightRequest covers direct and connecting flights. A connecting
// flight carries a stopover city plus both leg times; a direct flight leaves
// all three unset.
type CreateFlightRequest struct {
	Code                string  `json:"code" binding:"required"`
	Airline             string  `json:"airline" binding:"required"`
	DepartureCity       string  `json:"departureCity" binding:"required"`
	StopoverCity        *string `json:"stopoverCity,omitempty"`
	ArrivalCity         string  `json:"arrivalCity" binding:"required"`
	DepartureTime       string  `json:"departureTime" binding:"required,datetime=15:04"`
	LegOneArrivalTime   *string `json:"legOneArrivalTime,omitempty" binding:"omitempty,datetime=15:04"`
	LegTwoDepartureTime *string `json:"legTwoDepartureTime,omitempty" binding:"omitempty,datetime=15:04"`
	ArrivalTime         string  `json:"arrivalTime" binding:"required,datetime=15:04"`
	TicketClass         string  `json:"ticketClass" binding:"required"`
	Capacity            int     `json:"capacity" binding:"required,gt=0"`
	Price               int64   `json:"price" binding:"required,gt=0"`
}

type CreateTaxiRequest struct {
	City      string `json:"city" binding:"required"`
	TaxiType  string `json:"taxiType" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,gt=0"`
	BaseFare  int64  `json:"baseFare" binding:"gte=0"`
	PerKmRate int64  `json:"perKmRate" binding:"gte=0"`
}
