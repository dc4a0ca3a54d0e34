package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"sletayka/internal/domain"
)

// BookingConfirmation is what the visitor gets back after a successful
// submission: the upstream booking number plus a pre-composed summary
// and a messenger deep link as the secondary confirmation channel.
type BookingConfirmation struct {
	BookingNumber string `json:"bookingNumber"`
	Message       string `json:"message,omitempty"`
	Summary       string `json:"summary"`
	MessengerLink string `json:"messengerLink,omitempty"`
}

// BookingService forwards booking inquiries to the upstream endpoint
// and mirrors them into the agency's messaging channel.
type BookingService struct {
	client   domain.BookingClient
	notifier domain.Notifier
	catalog  *CatalogService
	contact  string // agency WhatsApp number for the deep link, digits only
}

func NewBookingService(client domain.BookingClient, notifier domain.Notifier, catalog *CatalogService, contact string) *BookingService {
	return &BookingService{client: client, notifier: notifier, catalog: catalog, contact: contact}
}

// Submit forwards the inquiry upstream. The Telegram mirror is
// fire-and-forget: its failure is logged, never surfaced.
func (s *BookingService) Submit(ctx context.Context, req domain.BookingRequest) (BookingConfirmation, error) {
	res, err := s.client.Submit(ctx, req)
	if err != nil {
		return BookingConfirmation{}, fmt.Errorf("booking submit: %w", err)
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "заявка отклонена"
		}
		return BookingConfirmation{}, fmt.Errorf("booking rejected: %s", msg)
	}

	summary := s.summary(req, res)
	conf := BookingConfirmation{
		BookingNumber: res.BookingNumber,
		Message:       res.Message,
		Summary:       summary,
	}
	if s.contact != "" {
		conf.MessengerLink = fmt.Sprintf("https://wa.me/%s?text=%s", s.contact, url.QueryEscape(summary))
	}

	if s.catalog != nil {
		s.catalog.NoticeBooked(req.TourID)
	}

	if s.notifier != nil {
		go func() {
			nctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.notifier.NotifyBooking(nctx, req, res); err != nil {
				log.Warn().Str("booking", res.BookingNumber).Err(err).Msg("booking mirror failed")
			}
		}()
	}

	return conf, nil
}

func (s *BookingService) summary(req domain.BookingRequest, res domain.BookingResult) string {
	parts := []string{fmt.Sprintf("Заявка %s", res.BookingNumber)}
	if s.catalog != nil {
		if t, ok := s.catalog.Tour(req.TourID); ok {
			parts = append(parts, fmt.Sprintf("%s (%s), %s", t.Title, t.Destination, t.PriceFormatted))
		}
	}
	parts = append(parts, req.Name, req.Phone)
	if req.Tourists != "" {
		parts = append(parts, req.Tourists)
	}
	return strings.Join(parts, " — ")
}
