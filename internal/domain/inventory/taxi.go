package inventory

import (
	"math"
	"time"
)

// taxi rides are sampled into fixed slices so that overlapping rides contend
// for the same keys
const (
	taxiSliceMinutes = 2
	taxiAvgSpeedKmh  = 60
)

// Taxi is a car pool for one city. One capacity unit is consumed per 2-minute
// slice from pickup through the estimated arrival.
type Taxi struct {
	id        int64
	city      string
	taxiType  string
	baseFare  int64
	perKmRate int64
	ledger    capacityLedger
}

func NewTaxi(id int64, city, taxiType string, capacity int, baseFare, perKmRate int64) (*Taxi, error) {
	if err := validateCity(city); err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if baseFare < 0 || perKmRate < 0 {
		return nil, ErrNegativePrice
	}

	return &Taxi{
		id:        id,
		city:      city,
		taxiType:  taxiType,
		baseFare:  baseFare,
		perKmRate: perKmRate,
		ledger:    newCapacityLedger(capacity),
	}, nil
}

func (t *Taxi) ID() int64        { return t.id }
func (t *Taxi) City() string     { return t.city }
func (t *Taxi) TaxiType() string { return t.taxiType }
func (t *Taxi) BaseFare() int64  { return t.baseFare }
func (t *Taxi) PerKmRate() int64 { return t.perKmRate }

// EstimatedMinutes assumes a 60 km/h average speed.
func (t *Taxi) EstimatedMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm / taxiAvgSpeedKmh * 60))
}

func (t *Taxi) EstimatedFare(distanceKm float64) int64 {
	return t.baseFare + int64(math.Round(distanceKm*float64(t.perKmRate)))
}

// SliceKeys returns every 2-minute slice from pickup through the estimated
// arrival, both ends inclusive.
func (t *Taxi) SliceKeys(pickup time.Time, distanceKm float64) []string {
	minutes := t.EstimatedMinutes(distanceKm)
	keys := make([]string, 0, minutes/taxiSliceMinutes+1)
	for m := 0; m <= minutes; m += taxiSliceMinutes {
		keys = append(keys, SliceKey(pickup.Add(time.Duration(m)*time.Minute)))
	}
	return keys
}

func (t *Taxi) Book(timeKey string) error {
	return t.ledger.book(timeKey)
}

func (t *Taxi) CancelBook(timeKey string) {
	t.ledger.cancelBook(timeKey)
}

func (t *Taxi) AvailabilityAt(timeKey string) int {
	return t.ledger.availabilityAt(timeKey)
}

// HasCarForRide reports whether every slice of the ride has a car left.
func (t *Taxi) HasCarForRide(pickup time.Time, distanceKm float64) bool {
	return t.ledger.allFree(t.SliceKeys(pickup, distanceKm))
}
