//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	start = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
)

func TestPackage(t *testing.T) {
	t.Run("valid package defaults discounted price to total cost", func(t *testing.T) {
		p, err := catalog.NewPackage(400001, catalog.KindCustom, 100001, 100002, 100003, start, end, 415)
		require.NoError(t, err)

		assert.Equal(t, int64(415), p.TotalCost())
		assert.Equal(t, int64(415), p.DiscountedPrice())
		assert.Equal(t, 2, p.Nights())
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := catalog.NewPackage(400001, catalog.KindCustom, 1, 2, 3, end, start, 415)
		assert.ErrorIs(t, err, catalog.ErrInvalidDateRange)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := catalog.NewKind("seasonal")
		assert.ErrorIs(t, err, catalog.ErrInvalidKind)
	})
}

func TestApplyDiscount(t *testing.T) {
	newPackage := func(t *testing.T) *catalog.Package {
		p, err := catalog.NewPackage(400001, catalog.KindOffered, 1, 2, 3, start, end, 415)
		require.NoError(t, err)
		return p
	}

	tests := []struct {
		name    string
		percent float64
		want    int64
		errIs   error
	}{
		{name: "zero percent keeps total", percent: 0, want: 415},
		{name: "fifteen percent floors", percent: 15, want: 352}, // 352.75 -> 352
		{name: "full discount", percent: 100, want: 0},
		{name: "negative rejected", percent: -1, errIs: catalog.ErrInvalidDiscount},
		{name: "over 100 rejected", percent: 101, errIs: catalog.ErrInvalidDiscount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPackage(t)
			err := p.ApplyDiscount(tt.percent)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.DiscountedPrice())
		})
	}

	// Intended behavior inherited from the original system: an edit resets
	// the discounted price and the discount must be re-applied explicitly.
	t.Run("replace resets discount", func(t *testing.T) {
		p := newPackage(t)
		require.NoError(t, p.ApplyDiscount(15))
		require.NoError(t, p.Replace(1, 2, 3, start, end, 500))
		assert.Equal(t, int64(500), p.DiscountedPrice())
	})
}

func TestTotalCost(t *testing.T) {
	hotel, err := inventory.NewHotel(100001, "Grand", "Paris", "Double", 5, 100, 10)
	require.NoError(t, err)

	dep, _ := inventory.ParseTimeOfDay("09:00")
	arr, _ := inventory.ParseTimeOfDay("11:05")
	flight, err := inventory.NewDirectFlight(100002, "AF1", "Air France", "Paris", "Rome", dep, arr, "Economy", 10, 200)
	require.NoError(t, err)

	taxi, err := inventory.NewTaxi(100003, "Paris", "Standard", 5, 5, 1)
	require.NoError(t, err)

	calc := catalog.NewCostCalculator()

	// 2 nights x 100 + flight 200 + taxi 5 + 1*10km
	assert.Equal(t, int64(415), calc.TotalCost(hotel, flight, taxi, start, end))

	it := catalog.BuildItinerary(flight, start, end)
	assert.Equal(t, start, it.CheckIn)
	assert.Equal(t, 2, it.Nights)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), it.Departure)
	assert.Equal(t, time.Date(2025, 6, 1, 11, 5, 0, 0, time.UTC), it.TaxiPickup)
}
