//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateRefundTier(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		hoursAhead   float64
		admin        bool
		wantTier     reservation.RefundTier
		wantFraction float64
	}{
		{name: "47h before departure", hoursAhead: 47, wantTier: reservation.TierClose, wantFraction: 0.70},
		{name: "48h boundary", hoursAhead: 48, wantTier: reservation.TierInter, wantFraction: 0.85},
		{name: "72h boundary", hoursAhead: 72, wantTier: reservation.TierInter, wantFraction: 0.85},
		{name: "73h before departure", hoursAhead: 73, wantTier: reservation.TierFar, wantFraction: 1.00},
		{name: "100h before departure", hoursAhead: 100, wantTier: reservation.TierFar, wantFraction: 1.00},
		{name: "30h before departure", hoursAhead: 30, wantTier: reservation.TierClose, wantFraction: 0.70},
		{name: "admin close to departure", hoursAhead: 1, admin: true, wantTier: reservation.TierImmediate, wantFraction: 1.00},
		{name: "admin long before departure", hoursAhead: 500, admin: true, wantTier: reservation.TierImmediate, wantFraction: 1.00},
		{name: "admin after departure", hoursAhead: -3, admin: true, wantTier: reservation.TierImmediate, wantFraction: 1.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			departure := now.Add(time.Duration(tt.hoursAhead * float64(time.Hour)))
			tier := reservation.EvaluateRefundTier(now, departure, tt.admin)

			assert.Equal(t, tt.wantTier, tier)
			assert.InDelta(t, tt.wantFraction, tier.Fraction(), 1e-9)
		})
	}
}

func TestRefundAmount(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		tier  reservation.RefundTier
		want  int64
	}{
		{name: "full refund", price: 415, tier: reservation.TierFar, want: 415},
		{name: "85 percent floors", price: 415, tier: reservation.TierInter, want: 352}, // 352.75
		{name: "70 percent floors", price: 415, tier: reservation.TierClose, want: 290}, // 290.5
		{name: "admin full refund", price: 999, tier: reservation.TierImmediate, want: 999},
		{name: "zero price", price: 0, tier: reservation.TierClose, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.RefundAmount(tt.price, tt.tier))
		})
	}
}

func TestReservationLifecycle(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	res := reservation.NewReservation(500001, 400001, 42, start, end)
	assert.True(t, res.IsActive())
	assert.Equal(t, reservation.StatusConfirmed, res.Status())

	assert.NoError(t, res.Cancel())
	assert.False(t, res.IsActive())

	// Cancelled is terminal.
	assert.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCancelled)
}
