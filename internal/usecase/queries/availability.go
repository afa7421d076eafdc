package queries

import (
	"context"
	"time"

	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
)

type InventoryViewRepo interface {
	HotelsWithRooms(ctx context.Context, city string, checkIn time.Time, nights int) []*inventory.Hotel
	FlightsWithSeats(ctx context.Context, departureCity, arrivalCity string, date time.Time) []*inventory.Flight
	TaxisWithCars(ctx context.Context, city string, pickup time.Time, distanceKm float64) []*inventory.Taxi
	AvailabilityAt(ctx context.Context, itemID int64, key string) (int, error)
}

// AvailabilityQueries answers "what can I still book" questions without
// consuming any capacity.
type AvailabilityQueries interface {
	SearchHotels(ctx context.Context, city string, checkIn time.Time, nights int) ([]*HotelView, error)
	SearchFlights(ctx context.Context, departureCity, arrivalCity string, date time.Time) ([]*FlightView, error)
	SearchTaxis(ctx context.Context, city string, pickup time.Time, distanceKm float64) ([]*TaxiView, error)
	ProductAvailability(ctx context.Context, itemID int64, key string) (int, error)
}

type availabilityQueriesImpl struct {
	repo InventoryViewRepo
}

func NewAvailabilityQueries(repo InventoryViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) SearchHotels(ctx context.Context, city string, checkIn time.Time, nights int) ([]*HotelView, error) {
	hotels := q.repo.HotelsWithRooms(ctx, city, checkIn, nights)
	views := make([]*HotelView, 0, len(hotels))
	for _, h := range hotels {
		views = append(views, NewHotelView(h))
	}
	return views, nil
}

func (q *availabilityQueriesImpl) SearchFlights(ctx context.Context, departureCity, arrivalCity string, date time.Time) ([]*FlightView, error) {
	flights := q.repo.FlightsWithSeats(ctx, departureCity, arrivalCity, date)
	views := make([]*FlightView, 0, len(flights))
	for _, f := range flights {
		views = append(views, NewFlightView(f))
	}
	return views, nil
}

func (q *availabilityQueriesImpl) SearchTaxis(ctx context.Context, city string, pickup time.Time, distanceKm float64) ([]*TaxiView, error) {
	taxis := q.repo.TaxisWithCars(ctx, city, pickup, distanceKm)
	views := make([]*TaxiView, 0, len(taxis))
	for _, t := range taxis {
		views = append(views, NewTaxiView(t))
	}
	return views, nil
}

func (q *availabilityQueriesImpl) ProductAvailability(ctx context.Context, itemID int64, key string) (int, error) {
	units, err := q.repo.AvailabilityAt(ctx, itemID, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.ErrProductNotFound
		}
		return 0, err
	}
	return units, nil
}
