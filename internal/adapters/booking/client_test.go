package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sletayka/internal/adapters/booking"
	"sletayka/internal/domain"
)

func TestSubmit_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.TourID != "t1" || req.Name != "Иван" {
			t.Errorf("unexpected request: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(domain.BookingResult{
			Success:       true,
			BookingNumber: "BK000042",
			Message:       "Заявка #BK000042 принята! Мы свяжемся с вами в ближайшее время.",
		})
	}))
	defer ts.Close()

	cl := booking.New(ts.URL)
	res, err := cl.Submit(context.Background(), domain.BookingRequest{
		TourID: "t1", Name: "Иван", Email: "ivan@example.com", Phone: "+79991234567",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Success || res.BookingNumber != "BK000042" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSubmit_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	cl := booking.New(ts.URL)
	_, err := cl.Submit(context.Background(), domain.BookingRequest{TourID: "t1"})
	if err == nil {
		t.Fatalf("expected error for 500")
	}
}
