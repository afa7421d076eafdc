package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/sequence"
)

const productIDBase = 100001

// InventoryStore is the in-memory registry of bookable products. Unlike the
// catalog and the ledger it has no flat file behind it; the agency seeds it
// at startup or through the admin endpoints. One mutex serializes every
// capacity mutation, and one shared sequence numbers hotels, flights and
// taxis alike.
type InventoryStore struct {
	mu      sync.Mutex
	seq     *sequence.Sequence
	hotels  map[int64]*inventory.Hotel
	flights map[int64]*inventory.Flight
	taxis   map[int64]*inventory.Taxi
	logger  *slog.Logger
}

func NewInventoryStore(logger *slog.Logger) *InventoryStore {
	return &InventoryStore{
		seq:     sequence.New(productIDBase),
		hotels:  make(map[int64]*inventory.Hotel),
		flights: make(map[int64]*inventory.Flight),
		taxis:   make(map[int64]*inventory.Taxi),
		logger:  logger,
	}
}

type HotelDraft struct {
	Name         string
	City         string
	RoomType     string
	Capacity     int
	NightlyPrice int64
	AirportKm    float64
}

type FlightDraft struct {
	Code          string
	Airline       string
	DepartureCity string
	StopoverCity  string // empty for direct flights
	ArrivalCity   string
	Departure     inventory.TimeOfDay
	LegOneArrival inventory.TimeOfDay
	LegTwoDep     inventory.TimeOfDay
	Arrival       inventory.TimeOfDay
	TicketClass   string
	Capacity      int
	Price         int64
}

type TaxiDraft struct {
	City      string
	TaxiType  string
	Capacity  int
	BaseFare  int64
	PerKmRate int64
}

func (s *InventoryStore) AddHotel(ctx context.Context, draft HotelDraft) (*inventory.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotel, err := inventory.NewHotel(s.seq.Next(), draft.Name, draft.City, draft.RoomType, draft.Capacity, draft.NightlyPrice, draft.AirportKm)
	if err != nil {
		return nil, err
	}
	s.hotels[hotel.ID()] = hotel
	return hotel, nil
}

func (s *InventoryStore) AddFlight(ctx context.Context, draft FlightDraft) (*inventory.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var flight *inventory.Flight
	var err error
	if draft.StopoverCity == "" {
		flight, err = inventory.NewDirectFlight(s.seq.Next(), draft.Code, draft.Airline, draft.DepartureCity, draft.ArrivalCity,
			draft.Departure, draft.Arrival, draft.TicketClass, draft.Capacity, draft.Price)
	} else {
		flight, err = inventory.NewConnectingFlight(s.seq.Next(), draft.Code, draft.Airline, draft.DepartureCity, draft.StopoverCity, draft.ArrivalCity,
			draft.Departure, draft.LegOneArrival, draft.LegTwoDep, draft.Arrival, draft.TicketClass, draft.Capacity, draft.Price)
	}
	if err != nil {
		return nil, err
	}
	s.flights[flight.ID()] = flight
	return flight, nil
}

func (s *InventoryStore) AddTaxi(ctx context.Context, draft TaxiDraft) (*inventory.Taxi, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	taxi, err := inventory.NewTaxi(s.seq.Next(), draft.City, draft.TaxiType, draft.Capacity, draft.BaseFare, draft.PerKmRate)
	if err != nil {
		return nil, err
	}
	s.taxis[taxi.ID()] = taxi
	return taxi, nil
}

func (s *InventoryStore) Hotel(ctx context.Context, id int64) (*inventory.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotel, ok := s.hotels[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("hotel %d not found", id), nil)
	}
	return hotel, nil
}

func (s *InventoryStore) Flight(ctx context.Context, id int64) (*inventory.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flights[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("flight %d not found", id), nil)
	}
	return flight, nil
}

func (s *InventoryStore) Taxi(ctx context.Context, id int64) (*inventory.Taxi, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	taxi, ok := s.taxis[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("taxi %d not found", id), nil)
	}
	return taxi, nil
}

// HotelsWithRooms lists hotels in a city with every night of the stay free.
func (s *InventoryStore) HotelsWithRooms(ctx context.Context, city string, checkIn time.Time, nights int) []*inventory.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*inventory.Hotel
	for _, hotel := range s.hotels {
		if hotel.City() == city && hotel.HasRoomForStay(checkIn, nights) {
			matched = append(matched, hotel)
		}
	}
	sortByID(matched, func(h *inventory.Hotel) int64 { return h.ID() })
	return matched
}

// FlightsWithSeats lists flights on a city pair with a seat left on the date.
func (s *InventoryStore) FlightsWithSeats(ctx context.Context, departureCity, arrivalCity string, date time.Time) []*inventory.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*inventory.Flight
	for _, flight := range s.flights {
		if flight.DepartureCity() == departureCity && flight.ArrivalCity() == arrivalCity && flight.HasSeatOn(date) {
			matched = append(matched, flight)
		}
	}
	sortByID(matched, func(f *inventory.Flight) int64 { return f.ID() })
	return matched
}

// TaxisWithCars lists taxis in a city with every slice of the ride free.
func (s *InventoryStore) TaxisWithCars(ctx context.Context, city string, pickup time.Time, distanceKm float64) []*inventory.Taxi {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*inventory.Taxi
	for _, taxi := range s.taxis {
		if taxi.City() == city && taxi.HasCarForRide(pickup, distanceKm) {
			matched = append(matched, taxi)
		}
	}
	sortByID(matched, func(t *inventory.Taxi) int64 { return t.ID() })
	return matched
}

// Book consumes one unit per key on a single item, rolling the item back to
// its prior state when any key is exhausted. Failure leaves capacity exactly
// as it was.
func (s *InventoryStore) Book(ctx context.Context, itemID int64, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.item(itemID)
	if err != nil {
		return err
	}

	for i, key := range keys {
		if err := item.Book(key); err != nil {
			for _, booked := range keys[:i] {
				item.CancelBook(booked)
			}
			return infra.WrapRepoErr(s.logger, infra.KindConflict, fmt.Sprintf("no capacity on item %d at %s", itemID, key), err)
		}
	}
	return nil
}

// Release returns one unit per key. Callers bracket Book/Release
// symmetrically; releasing more than was booked corrupts the counters.
func (s *InventoryStore) Release(ctx context.Context, itemID int64, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.item(itemID)
	if err != nil {
		return err
	}
	for _, key := range keys {
		item.CancelBook(key)
	}
	return nil
}

func (s *InventoryStore) AvailabilityAt(ctx context.Context, itemID int64, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.item(itemID)
	if err != nil {
		return 0, err
	}
	return item.AvailabilityAt(key), nil
}

func (s *InventoryStore) item(id int64) (inventory.Item, error) {
	if hotel, ok := s.hotels[id]; ok {
		return hotel, nil
	}
	if flight, ok := s.flights[id]; ok {
		return flight, nil
	}
	if taxi, ok := s.taxis[id]; ok {
		return taxi, nil
	}
	return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("product %d not found", id), nil)
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
