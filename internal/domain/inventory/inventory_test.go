//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHotel(t *testing.T, capacity int) *inventory.Hotel {
	t.Helper()
	h, err := inventory.NewHotel(100001, "Grand", "Paris", "Double", capacity, 100, 10)
	require.NoError(t, err)
	return h
}

func mustTaxi(t *testing.T, capacity int) *inventory.Taxi {
	t.Helper()
	taxi, err := inventory.NewTaxi(100003, "Paris", "Standard", capacity, 5, 1)
	require.NoError(t, err)
	return taxi
}

func TestCapacityLedger(t *testing.T) {
	key := "2025-06-01"

	t.Run("book then cancel restores original capacity", func(t *testing.T) {
		h := mustHotel(t, 5)

		require.NoError(t, h.Book(key))
		assert.Equal(t, 4, h.AvailabilityAt(key))

		h.CancelBook(key)
		assert.Equal(t, 5, h.AvailabilityAt(key))
	})

	t.Run("booking at zero capacity fails and leaves state unchanged", func(t *testing.T) {
		h := mustHotel(t, 1)

		require.NoError(t, h.Book(key))
		err := h.Book(key)
		assert.ErrorIs(t, err, inventory.ErrCapacityExhausted)
		assert.Equal(t, 0, h.AvailabilityAt(key))

		// The failure is idempotent: repeating it changes nothing.
		err = h.Book(key)
		assert.ErrorIs(t, err, inventory.ErrCapacityExhausted)
		assert.Equal(t, 0, h.AvailabilityAt(key))
	})

	t.Run("keys are independent", func(t *testing.T) {
		h := mustHotel(t, 2)
		require.NoError(t, h.Book("2025-06-01"))
		assert.Equal(t, 1, h.AvailabilityAt("2025-06-01"))
		assert.Equal(t, 2, h.AvailabilityAt("2025-06-02"))
	})

	t.Run("negative capacity rejected", func(t *testing.T) {
		_, err := inventory.NewHotel(1, "Grand", "Paris", "Double", -1, 100, 10)
		assert.ErrorIs(t, err, inventory.ErrNegativeCapacity)
	})

	t.Run("comma in city rejected", func(t *testing.T) {
		_, err := inventory.NewHotel(1, "Grand", "Paris, France", "Double", 5, 100, 10)
		assert.ErrorIs(t, err, inventory.ErrFieldHasComma)
	})
}

func TestHotelNights(t *testing.T) {
	h := mustHotel(t, 5)
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	keys := h.NightKeys(checkIn, 3)
	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03"}, keys)

	for _, key := range keys {
		require.NoError(t, h.Book(key))
	}
	assert.Equal(t, 4, h.AvailabilityAt(keys[0]))
	assert.True(t, h.HasRoomForStay(checkIn, 3))

	t.Run("stay needs every night free", func(t *testing.T) {
		tight, err := inventory.NewHotel(100002, "Petit", "Paris", "Single", 1, 80, 3)
		require.NoError(t, err)
		require.NoError(t, tight.Book("2025-06-02"))

		assert.True(t, tight.HasRoomForStay(checkIn, 1))
		assert.False(t, tight.HasRoomForStay(checkIn, 3))
	})
}

func TestFlightTimes(t *testing.T) {
	dep, err := inventory.ParseTimeOfDay("21:30")
	require.NoError(t, err)
	arr, err := inventory.ParseTimeOfDay("06:15")
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("overnight arrival sets day-change and shifts departure", func(t *testing.T) {
		f, err := inventory.NewDirectFlight(100004, "AF9", "Air France", "Paris", "Tokyo", dep, arr, "Economy", 10, 700)
		require.NoError(t, err)

		assert.True(t, f.DayChange())
		assert.Equal(t, time.Date(2025, 5, 31, 21, 30, 0, 0, time.UTC), f.DepartureAt(start))
		assert.Equal(t, time.Date(2025, 6, 1, 6, 15, 0, 0, time.UTC), f.ArrivalAt(start))
	})

	t.Run("same-day arrival departs on the start date", func(t *testing.T) {
		f, err := inventory.NewDirectFlight(100005, "AF1", "Air France", "Paris", "Rome", mustTOD(t, "09:00"), mustTOD(t, "11:05"), "Economy", 10, 200)
		require.NoError(t, err)

		assert.False(t, f.DayChange())
		assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), f.DepartureAt(start))
	})

	t.Run("connecting flight uses final leg arrival", func(t *testing.T) {
		f, err := inventory.NewConnectingFlight(100006, "LH77", "Lufthansa", "Paris", "Frankfurt", "Tokyo",
			mustTOD(t, "18:00"), mustTOD(t, "19:20"), mustTOD(t, "20:40"), mustTOD(t, "14:55"), "Business", 6, 1400)
		require.NoError(t, err)

		assert.True(t, f.IsConnecting())
		assert.True(t, f.DayChange())
		assert.Equal(t, "14:55", f.FinalArrivalTime().String())
	})

	t.Run("stopover required for connecting flights", func(t *testing.T) {
		_, err := inventory.NewConnectingFlight(1, "X", "Y", "Paris", "", "Tokyo",
			dep, arr, dep, arr, "Economy", 1, 1)
		assert.ErrorIs(t, err, inventory.ErrMissingStopover)
	})
}

func TestTaxiSlices(t *testing.T) {
	taxi := mustTaxi(t, 5)
	pickup := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

	t.Run("estimated ride and fare", func(t *testing.T) {
		assert.Equal(t, 10, taxi.EstimatedMinutes(10))
		assert.Equal(t, 11, taxi.EstimatedMinutes(10.5))
		assert.Equal(t, int64(15), taxi.EstimatedFare(10))
	})

	t.Run("slices cover pickup through arrival every 2 minutes", func(t *testing.T) {
		keys := taxi.SliceKeys(pickup, 10)
		assert.Len(t, keys, 6)
		assert.Equal(t, "2025-06-01 11:00", keys[0])
		assert.Equal(t, "2025-06-01 11:10", keys[5])
	})

	t.Run("ride needs every slice free", func(t *testing.T) {
		solo, err := inventory.NewTaxi(100007, "Paris", "Van", 1, 5, 1)
		require.NoError(t, err)
		require.NoError(t, solo.Book("2025-06-01 11:04"))

		assert.False(t, solo.HasCarForRide(pickup, 10))
		assert.True(t, solo.HasCarForRide(pickup.Add(20*time.Minute), 10))
	})
}

func mustTOD(t *testing.T, s string) inventory.TimeOfDay {
	t.Helper()
	tod, err := inventory.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}
