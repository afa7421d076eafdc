package inventory

import "time"

// Hotel is a room pool. One capacity unit is consumed per calendar night of a
// stay.
type Hotel struct {
	id           int64
	name         string
	city         string
	roomType     string
	nightlyPrice int64
	airportKm    float64
	ledger       capacityLedger
}

func NewHotel(id int64, name, city, roomType string, capacity int, nightlyPrice int64, airportKm float64) (*Hotel, error) {
	if err := validateCity(city); err != nil {
		return nil, err
	}
	if err := validateNoComma(name); err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if nightlyPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Hotel{
		id:           id,
		name:         name,
		city:         city,
		roomType:     roomType,
		nightlyPrice: nightlyPrice,
		airportKm:    airportKm,
		ledger:       newCapacityLedger(capacity),
	}, nil
}

func (h *Hotel) ID() int64           { return h.id }
func (h *Hotel) Name() string        { return h.name }
func (h *Hotel) City() string        { return h.city }
func (h *Hotel) RoomType() string    { return h.roomType }
func (h *Hotel) NightlyPrice() int64 { return h.nightlyPrice }
func (h *Hotel) AirportKm() float64  { return h.airportKm }

func (h *Hotel) Book(timeKey string) error {
	return h.ledger.book(timeKey)
}

func (h *Hotel) CancelBook(timeKey string) {
	h.ledger.cancelBook(timeKey)
}

func (h *Hotel) AvailabilityAt(timeKey string) int {
	return h.ledger.availabilityAt(timeKey)
}

// NightKeys returns one time key per calendar night of a stay starting at
// checkIn.
func (h *Hotel) NightKeys(checkIn time.Time, nights int) []string {
	keys := make([]string, 0, nights)
	for i := range nights {
		keys = append(keys, DateKey(checkIn.AddDate(0, 0, i)))
	}
	return keys
}

// HasRoomForStay reports whether every night of the span has at least one
// room left.
func (h *Hotel) HasRoomForStay(checkIn time.Time, nights int) bool {
	return h.ledger.allFree(h.NightKeys(checkIn, nights))
}
