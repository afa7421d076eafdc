package inventory

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCapacityExhausted = errors.New("capacity exhausted")
	ErrNegativeCapacity  = errors.New("capacity cannot be negative")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrEmptyCity         = errors.New("city must not be empty")
	ErrFieldHasComma     = errors.New("field must not contain a comma")
)

const (
	// DateKeyLayout keys hotel nights and flight departures.
	DateKeyLayout = "2006-01-02"
	// SliceKeyLayout keys taxi time slices.
	SliceKeyLayout = "2006-01-02 15:04"
)

// Item is a bookable unit with a capacity counter per time key. A time key is
// a calendar night for hotels, a departure date for flights and a 2-minute
// slice for taxis.
//
// Items carry no locking of their own; the owning registry serializes access.
type Item interface {
	ID() int64
	City() string
	Book(timeKey string) error
	CancelBook(timeKey string)
	AvailabilityAt(timeKey string) int
}

// capacityLedger tracks consumed units per time key against a fixed pool size.
type capacityLedger struct {
	capacity int
	booked   map[string]int
}

func newCapacityLedger(capacity int) capacityLedger {
	return capacityLedger{
		capacity: capacity,
		booked:   make(map[string]int),
	}
}

func (l *capacityLedger) availabilityAt(key string) int {
	remaining := l.capacity - l.booked[key]
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (l *capacityLedger) book(key string) error {
	if l.availabilityAt(key) <= 0 {
		return ErrCapacityExhausted
	}
	l.booked[key]++
	return nil
}

// cancelBook releases one unit. There is no upper bound check: callers must
// bracket book/cancel symmetrically or the counter is corrupted.
func (l *capacityLedger) cancelBook(key string) {
	l.booked[key]--
	if l.booked[key] <= 0 {
		delete(l.booked, key)
	}
}

func (l *capacityLedger) allFree(keys []string) bool {
	for _, key := range keys {
		if l.availabilityAt(key) <= 0 {
			return false
		}
	}
	return true
}

func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

func SliceKey(t time.Time) string {
	return t.Format(SliceKeyLayout)
}

func validateCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return ErrEmptyCity
	}
	return validateNoComma(city)
}

// The flat stores are comma separated with no escaping, so free-text fields
// must never contain one.
func validateNoComma(s string) error {
	if strings.Contains(s, ",") {
		return ErrFieldHasComma
	}
	return nil
}
