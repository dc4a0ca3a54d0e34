package app_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"sletayka/internal/app"
	"sletayka/internal/domain"
)

type fakeBookingClient struct {
	res  domain.BookingResult
	err  error
	last domain.BookingRequest
}

func (c *fakeBookingClient) Submit(ctx context.Context, req domain.BookingRequest) (domain.BookingResult, error) {
	c.last = req
	return c.res, c.err
}

func bookingCatalog(t *testing.T) *app.CatalogService {
	t.Helper()
	feed := &fakeFeed{tours: []domain.Tour{
		hotTour("7", "Горящий тур в Турцию", 55000),
	}}
	svc := app.NewCatalogService(feed, &fakeCache{}, nil, time.Hour, time.Minute)
	svc.Seed(context.Background())
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return svc
}

func TestSubmit_ComposesSummaryAndLink(t *testing.T) {
	catalog := bookingCatalog(t)
	client := &fakeBookingClient{res: domain.BookingResult{Success: true, BookingNumber: "BK000042"}}
	svc := app.NewBookingService(client, nil, catalog, "74951234567")

	req := domain.BookingRequest{
		TourID: "7", Name: "Анна", Email: "anna@example.com", Phone: "+7 900 000-00-00", Tourists: "2 взрослых",
	}
	conf, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if conf.BookingNumber != "BK000042" {
		t.Fatalf("booking number: %q", conf.BookingNumber)
	}
	for _, want := range []string{"BK000042", "Горящий тур в Турцию", "Анна", "+7 900 000-00-00", "2 взрослых"} {
		if !strings.Contains(conf.Summary, want) {
			t.Fatalf("summary %q misses %q", conf.Summary, want)
		}
	}
	if !strings.HasPrefix(conf.MessengerLink, "https://wa.me/74951234567?text=") {
		t.Fatalf("messenger link: %q", conf.MessengerLink)
	}
	u, err := url.Parse(conf.MessengerLink)
	if err != nil {
		t.Fatalf("link must be a valid URL: %v", err)
	}
	if got := u.Query().Get("text"); got != conf.Summary {
		t.Fatalf("link text %q != summary %q", got, conf.Summary)
	}
	if client.last.TourID != "7" {
		t.Fatalf("request not forwarded: %+v", client.last)
	}
}

func TestSubmit_NoContactMeansNoLink(t *testing.T) {
	client := &fakeBookingClient{res: domain.BookingResult{Success: true, BookingNumber: "BK1"}}
	svc := app.NewBookingService(client, nil, nil, "")

	conf, err := svc.Submit(context.Background(), domain.BookingRequest{TourID: "1", Name: "Иван", Phone: "1"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if conf.MessengerLink != "" {
		t.Fatalf("unexpected link: %q", conf.MessengerLink)
	}
}

func TestSubmit_UpstreamErrorIsSurfaced(t *testing.T) {
	client := &fakeBookingClient{err: errors.New("timeout")}
	svc := app.NewBookingService(client, nil, nil, "74951234567")

	if _, err := svc.Submit(context.Background(), domain.BookingRequest{TourID: "1"}); err == nil {
		t.Fatal("want error")
	}
}

func TestSubmit_RejectionIsAnError(t *testing.T) {
	client := &fakeBookingClient{res: domain.BookingResult{Success: false, Message: "мест нет"}}
	svc := app.NewBookingService(client, nil, nil, "74951234567")

	_, err := svc.Submit(context.Background(), domain.BookingRequest{TourID: "1"})
	if err == nil || !strings.Contains(err.Error(), "мест нет") {
		t.Fatalf("want rejection message surfaced, got %v", err)
	}
}

func TestSubmit_HidesNoticeForBookedTour(t *testing.T) {
	catalog := bookingCatalog(t)
	if _, ok := catalog.Notice(); !ok {
		t.Fatal("precondition: notice visible")
	}
	client := &fakeBookingClient{res: domain.BookingResult{Success: true, BookingNumber: "BK2"}}
	svc := app.NewBookingService(client, nil, catalog, "")

	if _, err := svc.Submit(context.Background(), domain.BookingRequest{TourID: "7", Name: "Иван", Phone: "1"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, ok := catalog.Notice(); ok {
		t.Fatal("booking the noticed tour must hide the notice")
	}
}
