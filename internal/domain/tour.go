package domain

import "strings"

// Country group codes used by the upstream feed.
const (
	CountryEurope   = "europe"
	CountryAsia     = "asia"
	CountryAmerica  = "america"
	CountryMaldives = "maldives"
	CountryAfrica   = "africa"
)

// Tour categories.
const (
	CategoryBeach     = "beach"
	CategoryCulture   = "culture"
	CategoryMountains = "mountains"
	CategoryHot       = "hot"
)

// Tour is one bookable travel package as delivered by the feed.
// Price is in whole roubles; PriceFormatted is the display string the
// upstream already rendered. OriginalPrice/Discount are zero when the
// tour is not discounted.
type Tour struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Destination    string   `json:"destination"`
	Country        string   `json:"country"`
	Price          int      `json:"price"`
	PriceFormatted string   `json:"priceFormatted"`
	OriginalPrice  int      `json:"originalPrice,omitempty"`
	Discount       int      `json:"discount,omitempty"`
	Duration       string   `json:"duration,omitempty"`
	Nights         int      `json:"nights,omitempty"`
	Departure      string   `json:"departure,omitempty"`
	Dates          string   `json:"dates,omitempty"`
	Image          string   `json:"image,omitempty"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category"`
	Rating         float64  `json:"rating,omitempty"`
	Reviews        int      `json:"reviews,omitempty"`
	Hotel          string   `json:"hotel,omitempty"`
	HotelStars     int      `json:"hotelStars,omitempty"`
	Included       []string `json:"included,omitempty"`
	Meal           string   `json:"meal,omitempty"`
	FlightIncluded bool     `json:"flightIncluded,omitempty"`
	Source         string   `json:"source,omitempty"`
}

// Hot-deal classification.
const (
	HotTitleKeyword      = "горящий"
	HotDiscountThreshold = 20 // percent, strictly exceeded
)

// IsHotDeal reports whether the tour counts as an urgent, time-limited
// offer: the dedicated category, a keyword in the title, or a discount
// above the threshold.
func (t Tour) IsHotDeal() bool {
	if t.Category == CategoryHot {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), HotTitleKeyword) {
		return true
	}
	return t.Discount > HotDiscountThreshold
}

// HotDeals returns the hot-deal subset of tours, preserving input order.
func HotDeals(tours []Tour) []Tour {
	out := make([]Tour, 0, len(tours))
	for _, t := range tours {
		if t.IsHotDeal() {
			out = append(out, t)
		}
	}
	return out
}
