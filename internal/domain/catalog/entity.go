package catalog

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidKind      = errors.New("invalid package kind")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrInvalidDiscount  = errors.New("discount percentage must be between 0 and 100")
)

type Kind string

const (
	KindOffered Kind = "offered"
	KindCustom  Kind = "custom"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindOffered, KindCustom:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// Package is a priced bundle of one hotel, one flight and one taxi over a
// date range. It references inventory items by id; the items themselves are
// shared across packages and owned by the inventory registry.
type Package struct {
	id         int64
	kind       Kind
	hotelID    int64
	flightID   int64
	taxiID     int64
	startDate  time.Time
	endDate    time.Time
	totalCost  int64
	discounted int64
}

func NewPackage(id int64, kind Kind, hotelID, flightID, taxiID int64, startDate, endDate time.Time, totalCost int64) (*Package, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !endDate.After(startDate) {
		return nil, ErrInvalidDateRange
	}

	return &Package{
		id:         id,
		kind:       kind,
		hotelID:    hotelID,
		flightID:   flightID,
		taxiID:     taxiID,
		startDate:  startDate,
		endDate:    endDate,
		totalCost:  totalCost,
		discounted: totalCost,
	}, nil
}

// ReconstructPackage rebuilds a package from its persisted form. The
// discounted price is not persisted, so it resets to the total cost; a
// discount is an explicit override that must be re-applied after any reload
// or edit.
func ReconstructPackage(id int64, kind Kind, hotelID, flightID, taxiID int64, startDate, endDate time.Time, totalCost int64) *Package {
	return &Package{
		id:         id,
		kind:       kind,
		hotelID:    hotelID,
		flightID:   flightID,
		taxiID:     taxiID,
		startDate:  startDate,
		endDate:    endDate,
		totalCost:  totalCost,
		discounted: totalCost,
	}
}

func (p *Package) ID() int64             { return p.id }
func (p *Package) Kind() Kind            { return p.kind }
func (p *Package) HotelID() int64        { return p.hotelID }
func (p *Package) FlightID() int64       { return p.flightID }
func (p *Package) TaxiID() int64         { return p.taxiID }
func (p *Package) StartDate() time.Time  { return p.startDate }
func (p *Package) EndDate() time.Time    { return p.endDate }
func (p *Package) TotalCost() int64      { return p.totalCost }
func (p *Package) DiscountedPrice() int64 { return p.discounted }

func (p *Package) Nights() int {
	return int(p.endDate.Sub(p.startDate).Hours() / 24)
}

// Replace swaps references and dates in place and resets the price to the
// freshly computed total. The discounted price is deliberately NOT carried
// over: the caller must re-apply any discount after an edit.
func (p *Package) Replace(hotelID, flightID, taxiID int64, startDate, endDate time.Time, totalCost int64) error {
	if !endDate.After(startDate) {
		return ErrInvalidDateRange
	}
	p.hotelID = hotelID
	p.flightID = flightID
	p.taxiID = taxiID
	p.startDate = startDate
	p.endDate = endDate
	p.totalCost = totalCost
	p.discounted = totalCost
	return nil
}

// ApplyDiscount overrides the charged price with a percentage off the total
// cost, floored to a whole amount.
func (p *Package) ApplyDiscount(percent float64) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	p.discounted = int64(math.Floor(float64(p.totalCost) * (100 - percent) / 100))
	return nil
}
