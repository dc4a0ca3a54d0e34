package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sletayka/internal/app"
	"sletayka/internal/domain"
)

type Handlers struct {
	Catalog *app.CatalogService
	Booking *app.BookingService
	Feed    domain.FeedClient
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/tours", h.listTours)
	s.mux.Get("/v1/tours/{id}", h.getTour)
	s.mux.Post("/v1/tours/refresh", h.refresh)
	s.mux.Get("/v1/hotdeals", h.listHotDeals)
	s.mux.Get("/v1/hotdeals/notice", h.getNotice)
	s.mux.Post("/v1/hotdeals/notice/dismiss", h.dismissNotice)
	s.mux.Get("/v1/price/quote", h.priceQuote)
	s.mux.Post("/v1/bookings", h.submitBooking)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// parseFilter reads the filter state from query parameters. Absent
// parameters leave their predicate inactive.
func parseFilter(r *http.Request) (domain.FilterState, error) {
	q := r.URL.Query()
	f := domain.DefaultFilter()
	f.Destination = q.Get("destination")
	if c := q.Get("country"); c != "" {
		f.Country = c
	}
	if c := q.Get("category"); c != "" {
		f.Category = c
	}
	if v := q.Get("priceMin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, errors.New("priceMin must be a non-negative integer")
		}
		f.PriceMin = n
	}
	if v := q.Get("priceMax"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, errors.New("priceMax must be a non-negative integer")
		}
		f.PriceMax = n
	}
	for _, v := range q["stars"] {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			return f, errors.New("stars must be integers between 1 and 5")
		}
		f.Stars = append(f.Stars, n)
	}
	f.Meals = q["meal"]
	return f, nil
}

type toursResponse struct {
	Tours       []domain.Tour `json:"tours"`
	Total       int           `json:"total"`
	LastUpdated *time.Time    `json:"lastUpdated,omitempty"`
}

func (h *Handlers) listTours(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	sortKey := r.URL.Query().Get("sort")

	tours, updated := h.Catalog.Tours(f, sortKey)
	resp := toursResponse{Tours: tours, Total: len(tours)}
	if !updated.IsZero() {
		resp.LastUpdated = &updated
	}

	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listTours body")
	}
}

func (h *Handlers) getTour(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, ok := h.Catalog.Tour(id)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "tour not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	// Ask the aggregator for fresh operator data; its failure is
	// logged, never surfaced.
	if h.Feed != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := h.Feed.TriggerRefresh(ctx); err != nil {
				log.Warn().Err(err).Msg("upstream refresh trigger failed")
			}
		}()
	}

	err := h.Catalog.Refresh(r.Context())
	switch {
	case errors.Is(err, app.ErrRefreshInFlight):
		writeProblem(w, http.StatusConflict, "Refresh in flight", "a refresh cycle is already running")
		return
	case err != nil:
		writeProblem(w, http.StatusBadGateway, "Feed unavailable", "could not fetch the tour feed; serving the previous list")
		return
	}

	tours, updated := h.Catalog.Tours(domain.DefaultFilter(), "")
	writeJSON(w, http.StatusOK, toursResponse{Total: len(tours), LastUpdated: &updated})
}

func (h *Handlers) listHotDeals(w http.ResponseWriter, r *http.Request) {
	deals := h.Catalog.HotDealList()
	writeJSON(w, http.StatusOK, map[string]any{"deals": deals, "total": len(deals)})
}

func (h *Handlers) getNotice(w http.ResponseWriter, r *http.Request) {
	n, ok := h.Catalog.Notice()
	if !ok {
		writeProblem(w, http.StatusNotFound, "No notice", "no active hot deal notice")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *Handlers) dismissNotice(w http.ResponseWriter, r *http.Request) {
	h.Catalog.DismissNotice()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) priceQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	guests, days := 2, 7
	if v := q.Get("guests"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid guests", "guests must be an integer")
			return
		}
		guests = n
	}
	if v := q.Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid days", "days must be an integer")
			return
		}
		days = n
	}
	tier := q.Get("tier")
	if tier == "" {
		tier = app.TierStandard
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"guests": guests,
		"days":   days,
		"tier":   tier,
		"price":  app.QuotePrice(guests, days, tier),
	})
}

func (h *Handlers) submitBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "request body must be JSON")
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		writeProblem(w, http.StatusBadRequest, "Missing required fields",
			"required: "+strings.Join(missing, ", "))
		return
	}

	conf, err := h.Booking.Submit(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("tour", req.TourID).Msg("booking forward failed")
		writeProblem(w, http.StatusBadGateway, "Booking failed",
			"could not submit the booking; please contact the agency directly")
		return
	}
	writeJSON(w, http.StatusOK, conf)
}
