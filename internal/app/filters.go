package app

import (
	"sort"

	"sletayka/internal/domain"
)

// ApplyFilters narrows tours to those matching every active predicate
// in f, then orders the result by sortKey. The input slice is never
// mutated; ties keep the feed's order (stable sort).
func ApplyFilters(tours []domain.Tour, f domain.FilterState, sortKey string) []domain.Tour {
	filtered := make([]domain.Tour, 0, len(tours))
	for _, t := range tours {
		if f.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	sortTours(filtered, sortKey)
	return filtered
}

func sortTours(tours []domain.Tour, key string) {
	switch key {
	case domain.SortPriceDesc:
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Price > tours[j].Price })
	case domain.SortRatingDesc:
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Rating > tours[j].Rating })
	case domain.SortDiscountDesc:
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Discount > tours[j].Discount })
	default: // price ascending, matching the feed's own default order
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Price < tours[j].Price })
	}
}
