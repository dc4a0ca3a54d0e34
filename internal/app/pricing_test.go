package app_test

import (
	"testing"

	"sletayka/internal/app"
)

func TestQuotePrice(t *testing.T) {
	cases := []struct {
		name   string
		guests int
		days   int
		tier   string
		want   int
	}{
		{"two guests week standard", 2, 7, app.TierStandard, 169600},
		{"unknown tier falls back to standard", 2, 7, "platinum", 169600},
		{"family comfort", 3, 10, app.TierComfort, 468000},
		{"luxury group", 4, 10, app.TierLuxury, 1040000},
		{"single traveller short trip", 1, 3, app.TierStandard, 59200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := app.QuotePrice(tc.guests, tc.days, tc.tier); got != tc.want {
				t.Fatalf("QuotePrice(%d, %d, %q) = %d, want %d", tc.guests, tc.days, tc.tier, got, tc.want)
			}
		})
	}
}

func TestQuotePrice_MonotonicInEveryInput(t *testing.T) {
	if app.QuotePrice(3, 7, app.TierStandard) <= app.QuotePrice(2, 7, app.TierStandard) {
		t.Fatal("more guests must cost more")
	}
	if app.QuotePrice(2, 10, app.TierStandard) <= app.QuotePrice(2, 7, app.TierStandard) {
		t.Fatal("more days must cost more")
	}
	base := app.QuotePrice(2, 7, app.TierStandard)
	if app.QuotePrice(2, 7, app.TierComfort) <= base || app.QuotePrice(2, 7, app.TierLuxury) <= app.QuotePrice(2, 7, app.TierComfort) {
		t.Fatal("tiers must be strictly ordered")
	}
}
