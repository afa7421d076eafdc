package reservation

import (
	"errors"
	"time"
)

var (
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrInvalidStatus    = errors.New("invalid reservation status")
)

// Reservation is a customer's claim on one package. The only lifecycle
// transition is confirmed -> cancelled; cancelled is terminal and the record
// is retained for history, never deleted.
type Reservation struct {
	id         int64
	packageID  int64
	customerID int64
	status     Status
	startDate  time.Time
	endDate    time.Time
}

// NewReservation creates a confirmed reservation. The date range is copied
// from the package at creation time so later package edits don't rewrite
// booking history.
func NewReservation(id, packageID, customerID int64, startDate, endDate time.Time) *Reservation {
	return &Reservation{
		id:         id,
		packageID:  packageID,
		customerID: customerID,
		status:     StatusConfirmed,
		startDate:  startDate,
		endDate:    endDate,
	}
}

func ReconstructReservation(id, packageID, customerID int64, status Status, startDate, endDate time.Time) *Reservation {
	return &Reservation{
		id:         id,
		packageID:  packageID,
		customerID: customerID,
		status:     status,
		startDate:  startDate,
		endDate:    endDate,
	}
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) PackageID() int64     { return r.packageID }
func (r *Reservation) CustomerID() int64    { return r.customerID }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) StartDate() time.Time { return r.startDate }
func (r *Reservation) EndDate() time.Time   { return r.endDate }

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

// Cancel flips the reservation to its terminal state. Cancelling twice is an
// error so that inventory is never released more than once.
func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}
