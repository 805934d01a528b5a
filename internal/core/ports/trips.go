package ports

import (
	"context"

	"github.com/srgjo27/bus_booking/internal/core/domain"
)

// SearchQuery carries the bus-search filters. Zero-value fields are
// omitted from the request entirely rather than sent empty.
type SearchQuery struct {
	From     string
	To       string
	Date     string
	Operator string
	Type     string
	FareMin  string
	FareMax  string
}

// TripService is the remote trip/booking service as seen by the core.
// Implementations live in internal/adapter; tests inject mocks.
type TripService interface {
	SearchBuses(ctx context.Context, query SearchQuery) ([]domain.Bus, error)
	GetSeatLayout(ctx context.Context, busID int64, date string) (*domain.SeatLayout, error)
	SuggestLocations(ctx context.Context, query string) ([]string, error)
	CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResponse, error)
}
