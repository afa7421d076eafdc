package commands

import (
	"context"
	"errors"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/inventory"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/patch"
	"travel-booking/internal/usecase/queries"
)

type CatalogCommands interface {
	MakePackage(ctx context.Context, req reqdto.CreatePackageRequest) (*queries.PackageView, error)
	EditPackage(ctx context.Context, id int64, req reqdto.UpdatePackageRequest) (*queries.PackageView, error)
	DeletePackage(ctx context.Context, id int64) error
	ApplyDiscount(ctx context.Context, id int64, percent float64) (*queries.PackageView, error)
}

type catalogUseCaseImpl struct {
	packageRepo   PackageRepository
	inventoryRepo InventoryRepository
	pricing       *catalog.CostCalculator
}

func NewCatalogUseCase(packageRepo PackageRepository, inventoryRepo InventoryRepository) CatalogCommands {
	return &catalogUseCaseImpl{
		packageRepo:   packageRepo,
		inventoryRepo: inventoryRepo,
		pricing:       catalog.NewCostCalculator(),
	}
}

func (c *catalogUseCaseImpl) MakePackage(ctx context.Context, req reqdto.CreatePackageRequest) (*queries.PackageView, error) {
	kind, err := catalog.NewKind(req.Kind)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInventory)
	}
	startDate, endDate, err := req.Dates()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	if !endDate.After(startDate) {
		return nil, errs.ErrInvalidDateRange
	}

	hotel, flight, taxi, err := c.resolveItems(ctx, req.HotelID, req.FlightID, req.TaxiID)
	if err != nil {
		return nil, err
	}

	pkg, err := c.packageRepo.Create(ctx, store.PackageDraft{
		Kind:      kind,
		HotelID:   hotel.ID(),
		FlightID:  flight.ID(),
		TaxiID:    taxi.ID(),
		StartDate: startDate,
		EndDate:   endDate,
		TotalCost: c.pricing.TotalCost(hotel, flight, taxi, startDate, endDate),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return queries.NewPackageView(pkg), nil
}

// EditPackage patches references and dates and reprices the bundle. Any
// discount override is dropped; it has to be granted again for the new price.
func (c *catalogUseCaseImpl) EditPackage(ctx context.Context, id int64, req reqdto.UpdatePackageRequest) (*queries.PackageView, error) {
	pkg, err := c.packageRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPackageNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	startDate, err := patchedDate(req.DateStart, pkg.StartDate())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	endDate, err := patchedDate(req.DateEnd, pkg.EndDate())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	if !endDate.After(startDate) {
		return nil, errs.ErrInvalidDateRange
	}

	hotel, flight, taxi, err := c.resolveItems(ctx,
		patch.Coalesce(req.HotelID, pkg.HotelID()),
		patch.Coalesce(req.FlightID, pkg.FlightID()),
		patch.Coalesce(req.TaxiID, pkg.TaxiID()),
	)
	if err != nil {
		return nil, err
	}

	total := c.pricing.TotalCost(hotel, flight, taxi, startDate, endDate)
	if err := pkg.Replace(hotel.ID(), flight.ID(), taxi.ID(), startDate, endDate, total); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	if err := c.packageRepo.Update(ctx, pkg); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return queries.NewPackageView(pkg), nil
}

func (c *catalogUseCaseImpl) DeletePackage(ctx context.Context, id int64) error {
	if err := c.packageRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrPackageNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

func (c *catalogUseCaseImpl) ApplyDiscount(ctx context.Context, id int64, percent float64) (*queries.PackageView, error) {
	pkg, err := c.packageRepo.ApplyDiscount(ctx, id, percent)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrPackageNotFound
		case errors.Is(err, catalog.ErrInvalidDiscount):
			return nil, errs.ErrInvalidDiscount
		default:
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}
	return queries.NewPackageView(pkg), nil
}

func (c *catalogUseCaseImpl) resolveItems(ctx context.Context, hotelID, flightID, taxiID int64) (*inventory.Hotel, *inventory.Flight, *inventory.Taxi, error) {
	hotel, err := c.inventoryRepo.Hotel(ctx, hotelID)
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrProductNotFound)
	}
	flight, err := c.inventoryRepo.Flight(ctx, flightID)
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrProductNotFound)
	}
	taxi, err := c.inventoryRepo.Taxi(ctx, taxiID)
	if err != nil {
		return nil, nil, nil, errs.Mark(err, errs.ErrProductNotFound)
	}
	return hotel, flight, taxi, nil
}

func patchedDate(raw *string, fallback time.Time) (time.Time, error) {
	if raw == nil {
		return fallback, nil
	}
	return reqdto.ParseDate(*raw)
}
