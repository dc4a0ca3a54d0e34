package domain

import "strings"

// Sort keys for the tour list.
const (
	SortPriceAsc     = "price_asc"
	SortPriceDesc    = "price_desc"
	SortRatingDesc   = "rating_desc"
	SortDiscountDesc = "discount_desc"
)

// FilterState holds the user-selected inclusion criteria. The zero
// value (plus DefaultFilter's price bounds) means "show everything":
// every inactive predicate passes.
type FilterState struct {
	Destination string // case-insensitive substring over destination or country text; "" = all
	Country     string // exact country group code; "" or "all" = all
	Category    string // exact category; "" or "all" = all
	PriceMin    int
	PriceMax    int
	Stars       []int    // required hotel star ratings; empty = all
	Meals       []string // required meal plans; empty = all
}

// DefaultPriceMax mirrors the upstream feed's open upper bound.
const DefaultPriceMax = 10_000_000

func DefaultFilter() FilterState {
	return FilterState{Country: "all", Category: "all", PriceMax: DefaultPriceMax}
}

// Matches reports whether the tour passes every active predicate.
func (f FilterState) Matches(t Tour) bool {
	if t.Price < f.PriceMin || t.Price > f.PriceMax {
		return false
	}
	if f.Destination != "" {
		q := strings.ToLower(f.Destination)
		if !strings.Contains(strings.ToLower(t.Destination), q) &&
			!strings.Contains(strings.ToLower(t.Country), q) {
			return false
		}
	}
	if f.Country != "" && f.Country != "all" && t.Country != f.Country {
		return false
	}
	if f.Category != "" && f.Category != "all" && t.Category != f.Category {
		return false
	}
	if len(f.Stars) > 0 && !containsInt(f.Stars, t.HotelStars) {
		return false
	}
	if len(f.Meals) > 0 && !containsFold(f.Meals, t.Meal) {
		return false
	}
	return true
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func containsFold(xs []string, v string) bool {
	for _, x := range xs {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}
