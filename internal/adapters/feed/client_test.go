package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"sletayka/internal/adapters/feed"
	"sletayka/internal/domain"
)

func TestGetTours_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_, _ = w.Write([]byte(`{"tours":[{"id":"t1","title":"Турция Анталия 5★","destination":"Турция","country":"asia","price":142000,"priceFormatted":"142 000 ₽","category":"beach"}],"total":1}`))
		}
	}))
	defer ts.Close()

	cl := feed.New(ts.URL, "", 100) // high RPS for tests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tours, err := cl.GetTours(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(tours) != 1 || tours[0].ID != "t1" || tours[0].Price != 142000 {
		t.Fatalf("unexpected tours: %+v", tours)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestGetTours_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl := feed.New(ts.URL, "", 100)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := cl.GetTours(ctx)
	if err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestGetTours_MalformedBodyIsEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	cl := feed.New(ts.URL, "", 100)
	tours, err := cl.GetTours(context.Background())
	if err != nil {
		t.Fatalf("malformed body must not error: %v", err)
	}
	if len(tours) != 0 {
		t.Fatalf("expected no tours, got %d", len(tours))
	}
}

// The scraper revision ships snake_case fields and numeric ids; both
// shapes must map to the same record.
func TestGetTours_LegacyFieldNames(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tours":[{"id":7,"title":"Греция Крит 4★","destination":"Греция","country":"europe","price":225000,"price_formatted":"225 000 ₽","image_url":"https://example.com/crete.jpg","category":"beach","hotel_stars":4,"flight_included":true,"source":"Anex Tour"}]}`))
	}))
	defer ts.Close()

	cl := feed.New(ts.URL, "", 100)
	tours, err := cl.GetTours(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []domain.Tour{{
		ID:             "7",
		Title:          "Греция Крит 4★",
		Destination:    "Греция",
		Country:        "europe",
		Price:          225000,
		PriceFormatted: "225 000 ₽",
		Image:          "https://example.com/crete.jpg",
		Category:       "beach",
		HotelStars:     4,
		FlightIncluded: true,
		Source:         "Anex Tour",
	}}
	if diff := cmp.Diff(want, tours); diff != "" {
		t.Fatalf("tours mismatch (-want +got):\n%s", diff)
	}
}

func TestTriggerRefresh(t *testing.T) {
	var method atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method.Store(r.Method)
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"success":true,"count":18}`))
	}))
	defer ts.Close()

	cl := feed.New(ts.URL, "secret", 100)
	if err := cl.TriggerRefresh(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m, _ := method.Load().(string); m != http.MethodPost {
		t.Fatalf("expected POST, got %s", m)
	}
}
