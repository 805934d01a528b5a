package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/bus_booking/internal/core/domain"
	"github.com/srgjo27/bus_booking/internal/core/ports"
)

// Client implements ports.TripService against the remote trip/booking
// service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SearchBuses queries GET /api/buses. Empty filter fields are omitted
// from the query string rather than sent blank.
func (c *Client) SearchBuses(ctx context.Context, query ports.SearchQuery) ([]domain.Bus, error) {
	params := url.Values{}
	setNonEmpty(params, "from", query.From)
	setNonEmpty(params, "to", query.To)
	setNonEmpty(params, "date", query.Date)
	setNonEmpty(params, "operator", query.Operator)
	setNonEmpty(params, "type", query.Type)
	setNonEmpty(params, "fare_min", query.FareMin)
	setNonEmpty(params, "fare_max", query.FareMax)

	var buses []domain.Bus
	if err := c.getJSON(ctx, "/api/buses", params, &buses); err != nil {
		return nil, fmt.Errorf("search buses: %w", err)
	}
	return buses, nil
}

// GetSeatLayout queries GET /api/buses/{busId}/seats for a travel date.
func (c *Client) GetSeatLayout(ctx context.Context, busID int64, date string) (*domain.SeatLayout, error) {
	params := url.Values{}
	params.Set("date", date)

	var layout domain.SeatLayout
	path := "/api/buses/" + strconv.FormatInt(busID, 10) + "/seats"
	if err := c.getJSON(ctx, path, params, &layout); err != nil {
		return nil, fmt.Errorf("seat layout for bus %d: %w", busID, err)
	}
	return &layout, nil
}

// SuggestLocations queries GET /api/locations.
func (c *Client) SuggestLocations(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("q", query)

	var items []string
	if err := c.getJSON(ctx, "/api/locations", params, &items); err != nil {
		return nil, fmt.Errorf("location suggestions: %w", err)
	}
	return items, nil
}

// CreateBooking posts the booking payload. Any non-2xx status is a
// failure; interpreting the body's status field is the caller's job.
func (c *Client) CreateBooking(ctx context.Context, bookingReq *domain.BookingRequest) (*domain.BookingResponse, error) {
	body, err := json.Marshal(bookingReq)
	if err != nil {
		return nil, fmt.Errorf("create booking: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp domain.BookingResponse
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func setNonEmpty(params url.Values, key, value string) {
	if strings.TrimSpace(value) != "" {
		params.Set(key, value)
	}
}
