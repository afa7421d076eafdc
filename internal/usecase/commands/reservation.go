package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/domain/reservation"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const idempotencyTTL = 24 * time.Hour

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type CancelReservationResult struct {
	Reservation  *queries.ReservationView
	Tier         reservation.RefundTier
	RefundAmount int64
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, customerID int64, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, reservationID int64, actorID int64, actorIsAdmin bool) (*CancelReservationResult, error)
}

type reservationUseCaseImpl struct {
	reservationRepo    ReservationRepository
	packageRepo        PackageRepository
	inventoryRepo      InventoryRepository
	transactionRepo    TransactionRepository
	customerDir        CustomerDirectory
	idempotencyRepo    IdempotencyRepository
	auditLog           AuditLogger
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	packageRepo PackageRepository,
	inventoryRepo InventoryRepository,
	transactionRepo TransactionRepository,
	customerDir CustomerDirectory,
	idempotencyRepo IdempotencyRepository,
	auditLog AuditLogger,
	reservationQueries queries.ReservationQueries,
	clock clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		reservationRepo:    reservationRepo,
		packageRepo:        packageRepo,
		inventoryRepo:      inventoryRepo,
		transactionRepo:    transactionRepo,
		customerDir:        customerDir,
		idempotencyRepo:    idempotencyRepo,
		auditLog:           auditLog,
		reservationQueries: reservationQueries,
		clock:              clock,
	}
}

func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	customerID int64,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	requestHash := calculateRequestHash(req)

	existing, err := r.idempotencyRepo.Begin(ctx, idempotencyKey, customerID, requestHash, idempotencyTTL)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if existing != nil {
		view, err := r.handleReplay(ctx, existing, requestHash)
		if err != nil {
			return nil, err
		}
		return &CreateReservationResult{Reservation: view, IsReplayed: true}, nil
	}

	view, err := r.createNewReservation(ctx, req, customerID)
	if err != nil {
		r.idempotencyRepo.Forget(ctx, idempotencyKey)
		return nil, err
	}
	if err := r.idempotencyRepo.Complete(ctx, idempotencyKey, view.ID); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return &CreateReservationResult{Reservation: view, IsReplayed: false}, nil
}

func (r *reservationUseCaseImpl) handleReplay(ctx context.Context, record *store.IdempotencyRecord, requestHash string) (*queries.ReservationView, error) {
	if record.RequestHash != requestHash {
		return nil, errs.ErrDuplicateRequest
	}
	switch record.Status {
	case store.IdempotencyCompleted:
		return r.reservationQueries.GetByIDSystem(ctx, record.ReservationID)
	case store.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency record status")
	}
}

func (r *reservationUseCaseImpl) createNewReservation(ctx context.Context, req reqdto.CreateReservationRequest, customerID int64) (*queries.ReservationView, error) {
	cust, err := r.customerDir.FindByID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCustomerNotFound)
	}

	pkg, err := r.packageRepo.FindByID(ctx, req.PackageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPackageNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	hotel, flight, taxi, err := r.resolveItems(ctx, pkg)
	if err != nil {
		return nil, err
	}

	itinerary := catalog.BuildItinerary(flight, pkg.StartDate(), pkg.EndDate())
	legs := bookingLegs(hotel, flight, taxi, itinerary)

	booked, err := r.bookLegs(ctx, legs)
	if err != nil {
		return nil, err
	}

	res, err := r.reservationRepo.Create(ctx, pkg.ID(), cust.ID(), pkg.StartDate(), pkg.EndDate())
	if err != nil {
		r.releaseLegs(ctx, booked)
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	if err := r.transactionRepo.RecordPurchase(ctx, res.ID(), cust.ID(), pkg.DiscountedPrice()); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	r.auditBooking(res, cust.ID(), hotel, taxi, itinerary)
	return queries.NewReservationView(res), nil
}

func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, reservationID int64, actorID int64, actorIsAdmin bool) (*CancelReservationResult, error) {
	res, err := r.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if !actorIsAdmin && res.CustomerID() != actorID {
		return nil, queries.ErrAccessDenied
	}
	if !res.IsActive() {
		return nil, errs.ErrAlreadyCancelled
	}

	pkg, err := r.packageRepo.FindByID(ctx, res.PackageID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPackageNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	hotel, flight, taxi, err := r.resolveItems(ctx, pkg)
	if err != nil {
		return nil, err
	}

	itinerary := catalog.BuildItinerary(flight, res.StartDate(), res.EndDate())
	tier := reservation.EvaluateRefundTier(r.clock.Now(), itinerary.Departure, actorIsAdmin)

	// The status change hits disk before any capacity is returned. A crash
	// in between leaks booked units rather than double-freeing them.
	cancelled, err := r.reservationRepo.MarkCancelled(ctx, reservationID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.ErrAlreadyCancelled
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrReservationNotFound
		default:
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}

	r.releaseLegs(ctx, bookingLegs(hotel, flight, taxi, itinerary))

	refund := reservation.RefundAmount(pkg.DiscountedPrice(), tier)
	if err := r.transactionRepo.RecordRefund(ctx, cancelled.ID(), cancelled.CustomerID(), refund); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	if err := r.auditLog.Append("CANCELLATION", fmt.Sprintf(
		"reservation %d customer %d tier %s refund %d",
		cancelled.ID(), cancelled.CustomerID(), tier, refund,
	)); err != nil {
		slog.Warn("failed to append audit entry", "error", err)
	}

	return &CancelReservationResult{
		Reservation:  queries.NewReservationView(cancelled),
		Tier:         tier,
		RefundAmount: refund,
	}, nil
}

type bookingLeg struct {
	itemID int64
	keys   []string
}

// bookingLegs expands an itinerary into the capacity keys each item consumes:
// one unit per hotel night, one flight seat on the departure date, one taxi
// car per two-minute slice of the airport ride.
func bookingLegs(hotel *inventory.Hotel, flight *inventory.Flight, taxi *inventory.Taxi, it catalog.Itinerary) []bookingLeg {
	return []bookingLeg{
		{itemID: hotel.ID(), keys: hotel.NightKeys(it.CheckIn, it.Nights)},
		{itemID: flight.ID(), keys: []string{inventory.DateKey(it.Departure)}},
		{itemID: taxi.ID(), keys: taxi.SliceKeys(it.TaxiPickup, hotel.AirportKm())},
	}
}

// bookLegs books every leg or none. A failure on a later leg releases the
// earlier ones before reporting exhaustion.
func (r *reservationUseCaseImpl) bookLegs(ctx context.Context, legs []bookingLeg) ([]bookingLeg, error) {
	for i, leg := range legs {
		if err := r.inventoryRepo.Book(ctx, leg.itemID, leg.keys); err != nil {
			r.releaseLegs(ctx, legs[:i])
			if infra.IsKind(err, infra.KindConflict) {
				return nil, errs.Mark(err, errs.ErrCapacityExhausted)
			}
			return nil, errs.Mark(err, errs.ErrProductNotFound)
		}
	}
	return legs, nil
}

func (r *reservationUseCaseImpl) releaseLegs(ctx context.Context, legs []bookingLeg) {
	for _, leg := range legs {
		if err := r.inventoryRepo.Release(ctx, leg.itemID, leg.keys); err != nil {
			slog.Warn("failed to release booked capacity", "item_id", leg.itemID, "error", err)
		}
	}
}

func (r *reservationUseCaseImpl) resolveItems(ctx context.Context, pkg *catalog.Package) (*inventory.Hotel, *inventory.Flight, *inventory.Taxi, error) {
	hotel, err := r.inventoryRepo.Hotel(ctx, pkg.HotelID())
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrProductNotFound)
	}
	flight, err := r.inventoryRepo.Flight(ctx, pkg.FlightID())
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrProductNotFound)
	}
	taxi, err := r.inventoryRepo.Taxi(ctx, pkg.TaxiID())
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrProductNotFound)
	}
	return hotel, flight, taxi, nil
}

func (r *reservationUseCaseImpl) auditBooking(res *reservation.Reservation, customerID int64, hotel *inventory.Hotel, taxi *inventory.Taxi, it catalog.Itinerary) {
	entries := []struct {
		event   string
		message string
	}{
		{"HOTEL BOOKING", fmt.Sprintf(
			"reservation %d customer %d hotel %d check-in %s for %d nights",
			res.ID(), customerID, hotel.ID(), it.CheckIn.Format(inventory.DateKeyLayout), it.Nights,
		)},
		{"TAXI BOOKING", fmt.Sprintf(
			"reservation %d customer %d taxi %d pickup %s",
			res.ID(), customerID, taxi.ID(), it.TaxiPickup.Format(inventory.SliceKeyLayout),
		)},
	}
	for _, e := range entries {
		if err := r.auditLog.Append(e.event, e.message); err != nil {
			slog.Warn("failed to append audit entry", "event", e.event, "error", err)
		}
	}
}

func calculateRequestHash(req reqdto.CreateReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
