package commands

import (
	"context"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/customer"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/domain/reservation"
	"travel-booking/internal/infra/store"

	"github.com/google/uuid"
)

// Write-side ports. The flat-file stores satisfy these directly; the drafts
// they accept are defined next to the stores that assign the ids.

type PackageRepository interface {
	Create(ctx context.Context, draft store.PackageDraft) (*catalog.Package, error)
	FindByID(ctx context.Context, id int64) (*catalog.Package, error)
	Update(ctx context.Context, pkg *catalog.Package) error
	Delete(ctx context.Context, id int64) error
	ApplyDiscount(ctx context.Context, id int64, percent float64) (*catalog.Package, error)
}

type InventoryRepository interface {
	AddHotel(ctx context.Context, draft store.HotelDraft) (*inventory.Hotel, error)
	AddFlight(ctx context.Context, draft store.FlightDraft) (*inventory.Flight, error)
	AddTaxi(ctx context.Context, draft store.TaxiDraft) (*inventory.Taxi, error)
	Hotel(ctx context.Context, id int64) (*inventory.Hotel, error)
	Flight(ctx context.Context, id int64) (*inventory.Flight, error)
	Taxi(ctx context.Context, id int64) (*inventory.Taxi, error)
	Book(ctx context.Context, itemID int64, keys []string) error
	Release(ctx context.Context, itemID int64, keys []string) error
}

type ReservationRepository interface {
	Create(ctx context.Context, packageID, customerID int64, startDate, endDate time.Time) (*reservation.Reservation, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	MarkCancelled(ctx context.Context, id int64) (*reservation.Reservation, error)
}

type TransactionRepository interface {
	RecordPurchase(ctx context.Context, reservationID, customerID, amount int64) error
	RecordRefund(ctx context.Context, reservationID, customerID, amount int64) error
}

type CustomerDirectory interface {
	FindByID(ctx context.Context, id int64) (*customer.Customer, error)
}

type AuditLogger interface {
	Append(eventType, message string) error
}

type IdempotencyRepository interface {
	Begin(ctx context.Context, key uuid.UUID, customerID int64, requestHash string, ttl time.Duration) (*store.IdempotencyRecord, error)
	Complete(ctx context.Context, key uuid.UUID, reservationID int64) error
	Forget(ctx context.Context, key uuid.UUID)
}
