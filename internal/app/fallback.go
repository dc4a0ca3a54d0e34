package app

import "sletayka/internal/domain"

// fallbackTours is the embedded catalog served when both the live feed
// and the cached snapshot are empty. Matches the agency's flagship
// offers.
var fallbackTours = []domain.Tour{
	{
		ID:             "1",
		Title:          "Мальдивы Премиум",
		Destination:    "Мальдивы",
		Country:        domain.CountryMaldives,
		Price:          450000,
		PriceFormatted: "450 000 ₽",
		Duration:       "7 дней",
		Nights:         7,
		Description:    "Роскошный отдых на белоснежных пляжах с частным бунгало над водой",
		Category:       domain.CategoryBeach,
		Rating:         4.9,
		HotelStars:     5,
	},
	{
		ID:             "2",
		Title:          "Европейский Шик",
		Destination:    "Париж-Рим-Венеция",
		Country:        domain.CountryEurope,
		Price:          320000,
		PriceFormatted: "320 000 ₽",
		Duration:       "10 дней",
		Nights:         10,
		Description:    "Погружение в европейскую культуру с проживанием в отелях класса люкс",
		Category:       domain.CategoryCulture,
		Rating:         4.8,
		HotelStars:     5,
	},
	{
		ID:             "3",
		Title:          "Альпийская Роскошь",
		Destination:    "Швейцария",
		Country:        domain.CountryEurope,
		Price:          580000,
		PriceFormatted: "580 000 ₽",
		Duration:       "5 дней",
		Nights:         5,
		Description:    "Эксклюзивный горнолыжный курорт с личным инструктором и спа",
		Category:       domain.CategoryMountains,
		Rating:         5.0,
		HotelStars:     5,
	},
}

// FallbackTours returns a copy of the embedded catalog.
func FallbackTours() []domain.Tour {
	out := make([]domain.Tour, len(fallbackTours))
	copy(out, fallbackTours)
	return out
}
