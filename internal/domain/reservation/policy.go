package reservation

import (
	"math"
	"time"
)

// RefundTier buckets a cancellation by how far ahead of the flight departure
// it happens. Administrators always refund in full regardless of timing.
type RefundTier string

const (
	TierImmediate RefundTier = "immediate"
	TierFar       RefundTier = "far"
	TierInter     RefundTier = "inter"
	TierClose     RefundTier = "close"
)

func (t RefundTier) String() string {
	return string(t)
}

// Fraction is the share of the discounted price refunded for this tier.
func (t RefundTier) Fraction() float64 {
	switch t {
	case TierImmediate, TierFar:
		return 1.00
	case TierInter:
		return 0.85
	case TierClose:
		return 0.70
	default:
		return 0
	}
}

// EvaluateRefundTier is a pure function of the current time, the scheduled
// flight departure and whether the acting party is an administrator.
//
// Non-admin tiers by hours until departure: >72 far, 48..72 inter, <48 close.
func EvaluateRefundTier(now, departure time.Time, actorIsAdmin bool) RefundTier {
	if actorIsAdmin {
		return TierImmediate
	}

	hours := departure.Sub(now).Hours()
	switch {
	case hours > 72:
		return TierFar
	case hours >= 48:
		return TierInter
	default:
		return TierClose
	}
}

// RefundAmount floors the discounted price scaled by the tier fraction.
func RefundAmount(discountedPrice int64, tier RefundTier) int64 {
	return int64(math.Floor(float64(discountedPrice) * tier.Fraction()))
}
