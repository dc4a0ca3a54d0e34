package telegram

import (
	"fmt"
	"strings"

	"sletayka/internal/domain"
)

// FormatHotDeal formats a newly appeared hot deal as a chat message.
func FormatHotDeal(t domain.Tour) string {
	var b strings.Builder
	b.WriteString("🔥 Горящий тур\n\n")
	b.WriteString(t.Title)
	if t.Destination != "" {
		fmt.Fprintf(&b, "\n%s", t.Destination)
	}
	if t.Duration != "" {
		fmt.Fprintf(&b, ", %s", t.Duration)
	}
	b.WriteString("\n\n")
	if t.Discount > 0 && t.PriceFormatted != "" {
		fmt.Fprintf(&b, "%s (скидка %d%%)", t.PriceFormatted, t.Discount)
	} else if t.PriceFormatted != "" {
		b.WriteString(t.PriceFormatted)
	} else {
		fmt.Fprintf(&b, "%d ₽", t.Price)
	}
	if t.Source != "" {
		fmt.Fprintf(&b, "\nОператор: %s", t.Source)
	}
	return b.String()
}

// FormatBooking formats an accepted booking inquiry for the agency chat.
func FormatBooking(req domain.BookingRequest, res domain.BookingResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Новая заявка %s\n\n", res.BookingNumber)
	fmt.Fprintf(&b, "Тур: %s\n", req.TourID)
	fmt.Fprintf(&b, "Имя: %s\n", req.Name)
	fmt.Fprintf(&b, "Телефон: %s\n", req.Phone)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if req.Tourists != "" {
		fmt.Fprintf(&b, "Туристы: %s\n", req.Tourists)
	}
	if req.Comment != "" {
		fmt.Fprintf(&b, "Комментарий: %s\n", req.Comment)
	}
	return b.String()
}
