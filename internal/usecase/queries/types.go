package queries

import (
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/customer"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/domain/reservation"
)

const dateLayout = "2006-01-02"

// Read models (DTO for read side)
type PackageView struct {
	ID              int64  `json:"id"`
	Kind            string `json:"kind"`
	HotelID         int64  `json:"hotel_id"`
	FlightID        int64  `json:"flight_id"`
	TaxiID          int64  `json:"taxi_id"`
	DateStart       string `json:"date_start"`
	DateEnd         string `json:"date_end"`
	Nights          int    `json:"nights"`
	TotalCost       int64  `json:"total_cost"`
	DiscountedPrice int64  `json:"discounted_price"`
}

type ReservationView struct {
	ID         int64  `json:"id"`
	PackageID  int64  `json:"package_id"`
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
	DateStart  string `json:"date_start"`
	DateEnd    string `json:"date_end"`
}

type HotelView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	RoomType     string  `json:"room_type"`
	NightlyPrice int64   `json:"nightly_price"`
	AirportKm    float64 `json:"airport_km"`
}

type FlightView struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	Airline       string  `json:"airline"`
	DepartureCity string  `json:"departure_city"`
	StopoverCity  *string `json:"stopover_city,omitempty"`
	ArrivalCity   string  `json:"arrival_city"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	TicketClass   string  `json:"ticket_class"`
	Price         int64   `json:"price"`
	Overnight     bool    `json:"overnight"`
}

type TaxiView struct {
	ID        int64  `json:"id"`
	City      string `json:"city"`
	TaxiType  string `json:"taxi_type"`
	BaseFare  int64  `json:"base_fare"`
	PerKmRate int64  `json:"per_km_rate"`
}

type TransactionView struct {
	Date          string `json:"date"`
	Amount        int64  `json:"amount"`
	ReservationID int64  `json:"reservation_id"`
	CustomerID    int64  `json:"customer_id"`
	Type          string `json:"type"`
}

type CustomerView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func NewPackageView(pkg *catalog.Package) *PackageView {
	return &PackageView{
		ID:              pkg.ID(),
		Kind:            pkg.Kind().String(),
		HotelID:         pkg.HotelID(),
		FlightID:        pkg.FlightID(),
		TaxiID:          pkg.TaxiID(),
		DateStart:       pkg.StartDate().Format(dateLayout),
		DateEnd:         pkg.EndDate().Format(dateLayout),
		Nights:          pkg.Nights(),
		TotalCost:       pkg.TotalCost(),
		DiscountedPrice: pkg.DiscountedPrice(),
	}
}

func NewReservationView(res *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:         res.ID(),
		PackageID:  res.PackageID(),
		CustomerID: res.CustomerID(),
		Status:     res.Status().String(),
		DateStart:  res.StartDate().Format(dateLayout),
		DateEnd:    res.EndDate().Format(dateLayout),
	}
}

func NewHotelView(h *inventory.Hotel) *HotelView {
	return &HotelView{
		ID:           h.ID(),
		Name:         h.Name(),
		City:         h.City(),
		RoomType:     h.RoomType(),
		NightlyPrice: h.NightlyPrice(),
		AirportKm:    h.AirportKm(),
	}
}

func NewFlightView(f *inventory.Flight) *FlightView {
	view := &FlightView{
		ID:            f.ID(),
		Code:          f.Code(),
		Airline:       f.Airline(),
		DepartureCity: f.DepartureCity(),
		ArrivalCity:   f.ArrivalCity(),
		DepartureTime: f.DepartureTime().String(),
		ArrivalTime:   f.FinalArrivalTime().String(),
		TicketClass:   f.TicketClass(),
		Price:         f.Price(),
		Overnight:     f.DayChange(),
	}
	if f.IsConnecting() {
		stopover := f.StopoverCity()
		view.StopoverCity = &stopover
	}
	return view
}

func NewTaxiView(t *inventory.Taxi) *TaxiView {
	return &TaxiView{
		ID:        t.ID(),
		City:      t.City(),
		TaxiType:  t.TaxiType(),
		BaseFare:  t.BaseFare(),
		PerKmRate: t.PerKmRate(),
	}
}

func NewCustomerView(c *customer.Customer) *CustomerView {
	return &CustomerView{
		ID:       c.ID(),
		Username: c.Username().String(),
		Role:     c.Role().String(),
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
