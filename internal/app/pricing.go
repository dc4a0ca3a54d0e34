package app

import "math"

// Comfort tiers accepted by the price calculator.
const (
	TierStandard = "standard"
	TierComfort  = "comfort"
	TierLuxury   = "luxury"
)

// Calculator constants, in roubles.
const (
	quoteBasePrice   = 50000
	quoteDayRate     = 8000
	quoteGuestFactor = 0.8
)

func tierMultiplier(tier string) float64 {
	switch tier {
	case TierComfort:
		return 1.5
	case TierLuxury:
		return 2.5
	default:
		return 1.0
	}
}

// QuotePrice estimates a tour price from guest count, day count and
// comfort tier. Pure arithmetic; inputs are expected to be within the
// form's bounds (guests 1-10, days 3-21) but out-of-range values just
// scale the result, they are not an error.
func QuotePrice(guests, days int, tier string) int {
	total := (float64(quoteBasePrice) + float64(days)*quoteDayRate) *
		(float64(guests) * quoteGuestFactor) *
		tierMultiplier(tier)
	return int(math.Round(total))
}
