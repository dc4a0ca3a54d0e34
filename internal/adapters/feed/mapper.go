package feed

import (
	"strconv"
	"strings"

	"sletayka/internal/domain"
)

// Alias registry for the tour record. The aggregator has shipped two
// payload shapes (the scraper's snake_case columns and the API's
// camelCase), so every field lists its known spellings in preference
// order.
var tourAliases = map[string][]string{
	"id":             {"id", "tour_id", "tourId"},
	"title":          {"title", "name"},
	"destination":    {"destination", "dest"},
	"country":        {"country", "country_code", "countryCode"},
	"price":          {"price"},
	"priceFormatted": {"priceFormatted", "price_formatted"},
	"originalPrice":  {"originalPrice", "original_price"},
	"discount":       {"discount"},
	"duration":       {"duration", "days"},
	"nights":         {"nights"},
	"departure":      {"departure"},
	"dates":          {"dates"},
	"image":          {"image", "image_url", "imageUrl"},
	"description":    {"description", "desc"},
	"category":       {"category", "cat"},
	"rating":         {"rating"},
	"reviews":        {"reviews", "review_count", "reviewCount"},
	"hotel":          {"hotel", "hotel_name", "hotelName"},
	"hotelStars":     {"hotelStars", "hotel_stars", "stars"},
	"meal":           {"meal", "meal_plan", "mealPlan"},
	"flightIncluded": {"flightIncluded", "flight_included"},
	"source":         {"source", "operator", "provider"},
}

func mapTour(raw map[string]any) domain.Tour {
	return domain.Tour{
		ID:             firstString(raw, tourAliases["id"]...),
		Title:          firstNonEmpty(raw, "title"),
		Destination:    firstNonEmpty(raw, "destination"),
		Country:        firstNonEmpty(raw, "country"),
		Price:          firstInt(raw, tourAliases["price"]...),
		PriceFormatted: firstNonEmpty(raw, "priceFormatted"),
		OriginalPrice:  firstInt(raw, tourAliases["originalPrice"]...),
		Discount:       firstInt(raw, tourAliases["discount"]...),
		Duration:       firstNonEmpty(raw, "duration"),
		Nights:         firstInt(raw, tourAliases["nights"]...),
		Departure:      firstNonEmpty(raw, "departure"),
		Dates:          firstNonEmpty(raw, "dates"),
		Image:          firstNonEmpty(raw, "image"),
		Description:    firstNonEmpty(raw, "description"),
		Category:       firstNonEmpty(raw, "category"),
		Rating:         firstFloat(raw, tourAliases["rating"]...),
		Reviews:        firstInt(raw, tourAliases["reviews"]...),
		Hotel:          firstNonEmpty(raw, "hotel"),
		HotelStars:     firstInt(raw, tourAliases["hotelStars"]...),
		Included:       stringSlice(raw, "included"),
		Meal:           firstNonEmpty(raw, "meal"),
		FlightIncluded: firstBool(raw, tourAliases["flightIncluded"]...),
		Source:         firstNonEmpty(raw, "source"),
	}
}

// firstNonEmpty returns the first non-empty string for a named alias set.
func firstNonEmpty(m map[string]any, key string) string {
	for _, k := range tourAliases[key] {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstString accepts strings and numbers (the scraper revision ships
// numeric ids, the API revision string ones).
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return ""
}

// firstInt reads an integer from float64/int/string forms.
func firstInt(m map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return 0
}

// firstFloat reads a number, accepting a comma decimal separator.
func firstFloat(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func firstBool(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if b, ok := m[k].(bool); ok {
			return b
		}
	}
	return false
}

func stringSlice(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		if s, ok := it.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
