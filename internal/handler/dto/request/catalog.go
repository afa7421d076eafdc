package request

import "time"

const dateLayout = "2006-01-02"

type CreatePackageRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=offered custom"`
	HotelID   int64  `json:"hotelId" binding:"required"`
	FlightID  int64  `json:"flightId" binding:"required"`
	TaxiID    int64  `json:"taxiId" binding:"required"`
	DateStart string `json:"dateStart" binding:"required,datetime=2006-01-02"`
	DateEnd   string `json:"dateEnd" binding:"required,datetime=2006-01-02"`
}

func (r *CreatePackageRequest) Dates() (time.Time, time.Time, error) {
	return parseDateRange(r.DateStart, r.DateEnd)
}

// UpdatePackageRequest patches a package; absent fields keep their stored
// value.
type UpdatePackageRequest struct {
	HotelID   *int64  `json:"hotelId,omitempty"`
	FlightID  *int64  `json:"flightId,omitempty"`
	TaxiID    *int64  `json:"taxiId,omitempty"`
	DateStart *string `json:"dateStart,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DateEnd   *string `json:"dateEnd,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type ApplyDiscountRequest struct {
	Percent float64 `json:"percent" binding:"gte=0,lte=100"`
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startDate, endDate, nil
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
