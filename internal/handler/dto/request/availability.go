package request

import "time"

const pickupLayout = "2006-01-02 15:04"

type SearchHotelsRequest struct {
	City    string `form:"city" binding:"required"`
	CheckIn string `form:"checkIn" binding:"required,datetime=2006-01-02"`
	Nights  int    `form:"nights" binding:"required,gt=0"`
}

func (r *SearchHotelsRequest) CheckInDate() (time.Time, error) {
	return time.Parse(dateLayout, r.CheckIn)
}

type SearchFlightsRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

func (r *SearchFlightsRequest) DepartureDate() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

type SearchTaxisRequest struct {
	City       string  `form:"city" binding:"required"`
	Pickup     string  `form:"pickup" binding:"required"`
	DistanceKm float64 `form:"distanceKm" binding:"required,gt=0"`
}

func (r *SearchTaxisRequest) PickupTime() (time.Time, error) {
	return time.Parse(pickupLayout, r.Pickup)
}

type AvailabilityRequest struct {
	TimeKey string `form:"timeKey" binding:"required"`
}
