package catalog

import (
	"time"

	"travel-booking/internal/domain/inventory"
)

// Itinerary is the set of concrete instants a package resolves to once its
// inventory items are known. Everything downstream (booking keys, the refund
// policy) derives from it.
type Itinerary struct {
	CheckIn    time.Time
	Nights     int
	Departure  time.Time
	TaxiPickup time.Time
}

// BuildItinerary resolves a package date range against its flight.
// Check-in falls on the start date whether or not the flight is overnight;
// an overnight flight simply departs the evening before. The taxi picks the
// traveller up when the flight lands.
func BuildItinerary(flight *inventory.Flight, startDate, endDate time.Time) Itinerary {
	return Itinerary{
		CheckIn:    startDate,
		Nights:     int(endDate.Sub(startDate).Hours() / 24),
		Departure:  flight.DepartureAt(startDate),
		TaxiPickup: flight.ArrivalAt(startDate),
	}
}

type CostCalculator struct{}

func NewCostCalculator() *CostCalculator {
	return &CostCalculator{}
}

// TotalCost prices a bundle: hotel nights at the nightly rate, the flight
// ticket, and the estimated taxi fare for the hotel's airport distance.
func (c *CostCalculator) TotalCost(hotel *inventory.Hotel, flight *inventory.Flight, taxi *inventory.Taxi, startDate, endDate time.Time) int64 {
	nights := int64(endDate.Sub(startDate).Hours() / 24)
	return nights*hotel.NightlyPrice() + flight.Price() + taxi.EstimatedFare(hotel.AirportKm())
}
