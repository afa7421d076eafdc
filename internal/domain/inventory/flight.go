package inventory

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrMissingStopover  = errors.New("connecting flight requires stopover details")
)

// TimeOfDay is minutes since midnight, parsed from "15:04" wire text.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// On anchors the time of day to a calendar date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.minutes/60, t.minutes%60, 0, 0, date.Location())
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// Flight is a seat pool. One capacity unit is consumed per departure date.
// A flight is either direct (stopoverCity empty) or connecting with a second
// leg.
type Flight struct {
	id            int64
	code          string
	airline       string
	departureCity string
	arrivalCity   string
	stopoverCity  string
	departure     TimeOfDay
	arrival       TimeOfDay
	legTwoDep     TimeOfDay
	legTwoArr     TimeOfDay
	ticketClass   string
	price         int64
	ledger        capacityLedger
}

func NewDirectFlight(id int64, code, airline, departureCity, arrivalCity string, departure, arrival TimeOfDay, ticketClass string, capacity int, price int64) (*Flight, error) {
	f := &Flight{
		id:            id,
		code:          code,
		airline:       airline,
		departureCity: departureCity,
		arrivalCity:   arrivalCity,
		departure:     departure,
		arrival:       arrival,
		ticketClass:   ticketClass,
		price:         price,
		ledger:        newCapacityLedger(capacity),
	}
	if err := f.validate(capacity); err != nil {
		return nil, err
	}
	return f, nil
}

func NewConnectingFlight(id int64, code, airline, departureCity, stopoverCity, arrivalCity string, departure, legOneArr, legTwoDep, arrival TimeOfDay, ticketClass string, capacity int, price int64) (*Flight, error) {
	if stopoverCity == "" {
		return nil, ErrMissingStopover
	}
	f := &Flight{
		id:            id,
		code:          code,
		airline:       airline,
		departureCity: departureCity,
		arrivalCity:   arrivalCity,
		stopoverCity:  stopoverCity,
		departure:     departure,
		arrival:       legOneArr,
		legTwoDep:     legTwoDep,
		legTwoArr:     arrival,
		ticketClass:   ticketClass,
		price:         price,
		ledger:        newCapacityLedger(capacity),
	}
	if err := f.validate(capacity); err != nil {
		return nil, err
	}
	if err := validateCity(stopoverCity); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Flight) validate(capacity int) error {
	if err := validateCity(f.departureCity); err != nil {
		return err
	}
	if err := validateCity(f.arrivalCity); err != nil {
		return err
	}
	if err := validateNoComma(f.airline); err != nil {
		return err
	}
	if err := validateNoComma(f.code); err != nil {
		return err
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	if f.price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (f *Flight) ID() int64             { return f.id }
func (f *Flight) Code() string          { return f.code }
func (f *Flight) Airline() string       { return f.airline }
func (f *Flight) DepartureCity() string { return f.departureCity }
func (f *Flight) ArrivalCity() string   { return f.arrivalCity }
func (f *Flight) StopoverCity() string  { return f.stopoverCity }
func (f *Flight) TicketClass() string   { return f.ticketClass }
func (f *Flight) Price() int64          { return f.price }
func (f *Flight) IsConnecting() bool    { return f.stopoverCity != "" }

// City satisfies Item; a flight is listed under its departure city.
func (f *Flight) City() string { return f.departureCity }

func (f *Flight) DepartureTime() TimeOfDay { return f.departure }

// FinalArrivalTime is the arrival at the destination city, past the stopover
// for connecting flights.
func (f *Flight) FinalArrivalTime() TimeOfDay {
	if f.IsConnecting() {
		return f.legTwoArr
	}
	return f.arrival
}

// DayChange reports an overnight arrival: the final arrival time numerically
// precedes the departure time.
func (f *Flight) DayChange() bool {
	return f.FinalArrivalTime().Before(f.departure)
}

// DepartureAt resolves the actual departure instant for a package starting on
// startDate. An overnight flight leaves the day before the package starts so
// that it lands on the start date.
func (f *Flight) DepartureAt(startDate time.Time) time.Time {
	if f.DayChange() {
		return f.departure.On(startDate.AddDate(0, 0, -1))
	}
	return f.departure.On(startDate)
}

// ArrivalAt resolves the arrival instant at the destination; it always falls
// on the package start date.
func (f *Flight) ArrivalAt(startDate time.Time) time.Time {
	return f.FinalArrivalTime().On(startDate)
}

func (f *Flight) Book(timeKey string) error {
	return f.ledger.book(timeKey)
}

func (f *Flight) CancelBook(timeKey string) {
	f.ledger.cancelBook(timeKey)
}

func (f *Flight) AvailabilityAt(timeKey string) int {
	return f.ledger.availabilityAt(timeKey)
}

// HasSeatOn reports whether the departure date still has a seat.
func (f *Flight) HasSeatOn(departureDate time.Time) bool {
	return f.ledger.availabilityAt(DateKey(departureDate)) > 0
}
