package queries

import (
	"context"

	"travel-booking/internal/domain/reservation"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
)

var ErrAccessDenied = errs.New("access denied")

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]*reservation.Reservation, error)
}

type ReservationQueries interface {
	// GetByID enforces ownership: a customer only sees their own rows,
	// an admin sees everything.
	GetByID(ctx context.Context, actorID int64, actorIsAdmin bool, id int64) (*ReservationView, error)
	// GetByIDSystem bypasses the ownership check for internal reads such
	// as idempotent replay.
	GetByIDSystem(ctx context.Context, id int64) (*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID int64, actorIsAdmin bool, id int64) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actorIsAdmin && view.CustomerID != actorID {
		return nil, ErrAccessDenied
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id int64) (*ReservationView, error) {
	res, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	return NewReservationView(res), nil
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, customerID int64) ([]*ReservationView, error) {
	rows, err := q.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toReservationViews(rows), nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	rows, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toReservationViews(rows), nil
}

func toReservationViews(rows []*reservation.Reservation) []*ReservationView {
	views := make([]*ReservationView, 0, len(rows))
	for _, res := range rows {
		views = append(views, NewReservationView(res))
	}
	return views
}
