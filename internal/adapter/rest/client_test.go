package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/srgjo27/bus_booking/internal/adapter/rest"
	"github.com/srgjo27/bus_booking/internal/core/domain"
	"github.com/srgjo27/bus_booking/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.NewClient(srv.URL, 2*time.Second, zap.NewNop())
}

func TestClient_SearchBusesOmitsEmptyFilters(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/buses", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]domain.Bus{{ID: 1, Name: "Orange Travels", Fare: 550}})
	})

	buses, err := client.SearchBuses(context.Background(), ports.SearchQuery{
		From: "Hyderabad",
		To:   "Vijayawada",
		Date: "2026-09-01",
	})
	require.NoError(t, err)
	require.Len(t, buses, 1)
	assert.Equal(t, "Orange Travels", buses[0].Name)

	assert.Equal(t, []string{"Hyderabad"}, gotQuery["from"])
	assert.Equal(t, []string{"Vijayawada"}, gotQuery["to"])
	assert.Equal(t, []string{"2026-09-01"}, gotQuery["date"])
	for _, key := range []string{"operator", "type", "fare_min", "fare_max"} {
		assert.NotContains(t, gotQuery, key)
	}
}

func TestClient_GetSeatLayout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/buses/7/seats", r.URL.Path)
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("date"))
		json.NewEncoder(w).Encode(domain.SeatLayout{
			Fare:       650,
			SeatsTotal: 4,
			Seats:      []string{"1", "2", "3", "4"},
			Booked:     []string{"3"},
			Layout:     "2x2",
		})
	})

	layout, err := client.GetSeatLayout(context.Background(), 7, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 650.0, layout.Fare)
	assert.Equal(t, []string{"3"}, layout.Booked)
}

func TestClient_SuggestLocations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/locations", r.URL.Path)
		assert.Equal(t, "hyd", r.URL.Query().Get("q"))
		json.NewEncoder(w).Encode([]string{"Hyderabad"})
	})

	items, err := client.SuggestLocations(context.Background(), "hyd")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hyderabad"}, items)
}

func TestClient_CreateBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(7), req.BusID)
		assert.Equal(t, []string{"1", "2"}, req.SeatNumbers)

		json.NewEncoder(w).Encode(domain.BookingResponse{Status: "success", BookingID: 42})
	})

	resp, err := client.CreateBooking(context.Background(), &domain.BookingRequest{
		BusID:       7,
		Name:        "Asha",
		Seats:       2,
		SeatNumbers: []string{"1", "2"},
		Date:        "2026-09-01",
	})
	require.NoError(t, err)
	assert.True(t, resp.Succeeded())
	assert.Equal(t, int64(42), resp.BookingID)
}

func TestClient_NonSuccessStatusIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no such bus"}`, http.StatusNotFound)
	})

	_, err := client.GetSeatLayout(context.Background(), 99, "2026-09-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "no such bus")
}
