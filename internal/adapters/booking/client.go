package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sletayka/internal/adapters/observability"
	"sletayka/internal/domain"
)

// Client submits booking inquiries to the upstream endpoint. One
// attempt per inquiry: delivery is not retried automatically, failure
// goes back to the visitor.
type Client struct {
	url string
	hc  *http.Client
}

func New(url string) *Client {
	return &Client{
		url: url,
		hc:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) Submit(ctx context.Context, req domain.BookingRequest) (domain.BookingResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return domain.BookingResult{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return domain.BookingResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "sletayka/1.0")

	start := time.Now()
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		observability.ObserveExternal("booking", "submit", 0, time.Since(start))
		return domain.BookingResult{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("booking", "submit", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.BookingResult{}, fmt.Errorf("booking endpoint: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var res domain.BookingResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return domain.BookingResult{}, fmt.Errorf("booking endpoint: decode: %w", err)
	}
	return res, nil
}
