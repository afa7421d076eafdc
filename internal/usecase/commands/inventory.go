package commands

import (
	"context"

	"travel-booking/internal/domain/inventory"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"
)

type InventoryCommands interface {
	AddHotel(ctx context.Context, req reqdto.CreateHotelRequest) (*queries.HotelView, error)
	AddFlight(ctx context.Context, req reqdto.CreateFlightRequest) (*queries.FlightView, error)
	AddTaxi(ctx context.Context, req reqdto.CreateTaxiRequest) (*queries.TaxiView, error)
}

type inventoryUseCaseImpl struct {
	inventoryRepo InventoryRepository
}

func NewInventoryUseCase(inventoryRepo InventoryRepository) InventoryCommands {
	return &inventoryUseCaseImpl{inventoryRepo: inventoryRepo}
}

func (i *inventoryUseCaseImpl) AddHotel(ctx context.Context, req reqdto.CreateHotelRequest) (*queries.HotelView, error) {
	hotel, err := i.inventoryRepo.AddHotel(ctx, store.HotelDraft{
		Name:         req.Name,
		City:         req.City,
		RoomType:     req.RoomType,
		Capacity:     req.Capacity,
		NightlyPrice: req.NightlyPrice,
		AirportKm:    req.AirportKm,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInventory)
	}
	return queries.NewHotelView(hotel), nil
}

func (i *inventoryUseCaseImpl) AddFlight(ctx context.Context, req reqdto.CreateFlightRequest) (*queries.FlightView, error) {
	draft := store.FlightDraft{
		Code:          req.Code,
		Airline:       req.Airline,
		DepartureCity: req.DepartureCity,
		ArrivalCity:   req.ArrivalCity,
		TicketClass:   req.TicketClass,
		Capacity:      req.Capacity,
		Price:         req.Price,
	}

	var err error
	if draft.Departure, err = inventory.ParseTimeOfDay(req.DepartureTime); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInventory)
	}
	if draft.Arrival, err = inventory.ParseTimeOfDay(req.ArrivalTime); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInventory)
	}
	if req.StopoverCity != nil {
		if req.LegOneArrivalTime == nil || req.LegTwoDepartureTime == nil {
			return nil, errs.Mark(errs.New("connecting flight requires both leg times"), errs.ErrInvalidInventory)
		}
		draft.StopoverCity = *req.StopoverCity
		if draft.LegOneArrival, err = inventory.ParseTimeOfDay(*req.LegOneArrivalTime); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInventory)
		}
		if draft.LegTwoDep, err = inventory.ParseTimeOfDay(*req.LegTwoDepartureTime); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInventory)
		}
	}

	flight, err := i.inventoryRepo.AddFlight(ctx, draft)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInventory)
	}
	return queries.NewFlightView(flight), nil
}

func (i *inventoryUseCaseImpl) AddTaxi(ctx context.Context, req reqdto.CreateTaxiRequest) (*queries.TaxiView, error) {
	taxi, err := i.inventoryRepo.AddTaxi(ctx, store.TaxiDraft{
		City:      req.City,
		TaxiType:  req.TaxiType,
		Capacity:  req.Capacity,
		BaseFare:  req.BaseFare,
		PerKmRate: req.PerKmRate,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInventory)
	}
	return queries.NewTaxiView(taxi), nil
}
