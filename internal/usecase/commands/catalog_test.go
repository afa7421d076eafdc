//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/domain/inventory"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogEnv struct {
	inventory *store.InventoryStore
	packages  *store.PackageStore
	commands  commands.CatalogCommands

	hotelID  int64
	flightID int64
	taxiID   int64
}

func newCatalogEnv(t *testing.T) *catalogEnv {
	t.Helper()
	ctx := context.Background()

	env := &catalogEnv{
		inventory: store.NewInventoryStore(testLogger),
		packages:  store.NewPackageStore(config.NewTestConfig(t.TempDir()).Store, testLogger),
	}
	env.commands = commands.NewCatalogUseCase(env.packages, env.inventory)

	hotel, err := env.inventory.AddHotel(ctx, store.HotelDraft{
		Name: "Hotel Lutetia", City: "Paris", RoomType: "double",
		Capacity: 5, NightlyPrice: 100, AirportKm: 5,
	})
	require.NoError(t, err)
	env.hotelID = hotel.ID()

	dep, err := inventory.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	arr, err := inventory.ParseTimeOfDay("11:00")
	require.NoError(t, err)
	flight, err := env.inventory.AddFlight(ctx, store.FlightDraft{
		Code: "AF101", Airline: "Air France", DepartureCity: "London", ArrivalCity: "Paris",
		Departure: dep, Arrival: arr, TicketClass: "economy", Capacity: 2, Price: 80,
	})
	require.NoError(t, err)
	env.flightID = flight.ID()

	taxi, err := env.inventory.AddTaxi(ctx, store.TaxiDraft{
		City: "Paris", TaxiType: "sedan", Capacity: 3, BaseFare: 10, PerKmRate: 5,
	})
	require.NoError(t, err)
	env.taxiID = taxi.ID()

	return env
}

func (e *catalogEnv) createRequest() reqdto.CreatePackageRequest {
	return reqdto.CreatePackageRequest{
		Kind:      "custom",
		HotelID:   e.hotelID,
		FlightID:  e.flightID,
		TaxiID:    e.taxiID,
		DateStart: "2025-06-10",
		DateEnd:   "2025-06-13",
	}
}

func TestMakePackage(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the bundle from its parts", func(t *testing.T) {
		env := newCatalogEnv(t)

		view, err := env.commands.MakePackage(ctx, env.createRequest())
		require.NoError(t, err)

		// 3 nights at 100 + flight 80 + taxi 10 + 5*5
		assert.Equal(t, int64(415), view.TotalCost)
		assert.Equal(t, int64(415), view.DiscountedPrice)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, int64(400001), view.ID)
	})

	t.Run("rejects unknown inventory references", func(t *testing.T) {
		env := newCatalogEnv(t)

		req := env.createRequest()
		req.HotelID = 109999
		_, err := env.commands.MakePackage(ctx, req)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("rejects an empty date range", func(t *testing.T) {
		env := newCatalogEnv(t)

		req := env.createRequest()
		req.DateEnd = req.DateStart
		_, err := env.commands.MakePackage(ctx, req)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})
}

func TestEditPackage(t *testing.T) {
	ctx := context.Background()

	t.Run("patched dates reprice the package", func(t *testing.T) {
		env := newCatalogEnv(t)
		created, err := env.commands.MakePackage(ctx, env.createRequest())
		require.NoError(t, err)

		newEnd := "2025-06-12"
		view, err := env.commands.EditPackage(ctx, created.ID, reqdto.UpdatePackageRequest{DateEnd: &newEnd})
		require.NoError(t, err)

		// 2 nights at 100 + 80 + 35
		assert.Equal(t, int64(315), view.TotalCost)
		assert.Equal(t, 2, view.Nights)
		assert.Equal(t, env.hotelID, view.HotelID)
	})

	t.Run("an edit drops any discount override", func(t *testing.T) {
		env := newCatalogEnv(t)
		created, err := env.commands.MakePackage(ctx, env.createRequest())
		require.NoError(t, err)

		discounted, err := env.commands.ApplyDiscount(ctx, created.ID, 15)
		require.NoError(t, err)
		assert.Equal(t, int64(352), discounted.DiscountedPrice)

		newEnd := "2025-06-12"
		view, err := env.commands.EditPackage(ctx, created.ID, reqdto.UpdatePackageRequest{DateEnd: &newEnd})
		require.NoError(t, err)
		assert.Equal(t, view.TotalCost, view.DiscountedPrice)
	})

	t.Run("editing an unknown package is not found", func(t *testing.T) {
		env := newCatalogEnv(t)
		newEnd := "2025-06-12"
		_, err := env.commands.EditPackage(ctx, 409999, reqdto.UpdatePackageRequest{DateEnd: &newEnd})
		assert.ErrorIs(t, err, errs.ErrPackageNotFound)
	})
}

func TestApplyDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("floors the discounted price", func(t *testing.T) {
		env := newCatalogEnv(t)
		created, err := env.commands.MakePackage(ctx, env.createRequest())
		require.NoError(t, err)

		view, err := env.commands.ApplyDiscount(ctx, created.ID, 15)
		require.NoError(t, err)
		// 415 * 0.85 = 352.75, floored
		assert.Equal(t, int64(352), view.DiscountedPrice)
		assert.Equal(t, int64(415), view.TotalCost)
	})

	t.Run("rejects an out of range percentage", func(t *testing.T) {
		env := newCatalogEnv(t)
		created, err := env.commands.MakePackage(ctx, env.createRequest())
		require.NoError(t, err)

		_, err = env.commands.ApplyDiscount(ctx, created.ID, 120)
		assert.ErrorIs(t, err, errs.ErrInvalidDiscount)
	})
}

func TestDeletePackage(t *testing.T) {
	ctx := context.Background()
	env := newCatalogEnv(t)
	created, err := env.commands.MakePackage(ctx, env.createRequest())
	require.NoError(t, err)

	require.NoError(t, env.commands.DeletePackage(ctx, created.ID))
	assert.ErrorIs(t, env.commands.DeletePackage(ctx, created.ID), errs.ErrPackageNotFound)
}

// Guards against the pickup drifting away from the flight arrival when a
// package starts on the same date an overnight flight lands.
func TestOvernightFlightItinerary(t *testing.T) {
	ctx := context.Background()
	env := newCatalogEnv(t)

	dep, err := inventory.ParseTimeOfDay("23:30")
	require.NoError(t, err)
	arr, err := inventory.ParseTimeOfDay("07:45")
	require.NoError(t, err)
	overnight, err := env.inventory.AddFlight(ctx, store.FlightDraft{
		Code: "AF900", Airline: "Air France", DepartureCity: "London", ArrivalCity: "Paris",
		Departure: dep, Arrival: arr, TicketClass: "economy", Capacity: 2, Price: 80,
	})
	require.NoError(t, err)

	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, overnight.DayChange())
	assert.Equal(t, time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC), overnight.DepartureAt(start))
	assert.Equal(t, time.Date(2025, 6, 10, 7, 45, 0, 0, time.UTC), overnight.ArrivalAt(start))
}
