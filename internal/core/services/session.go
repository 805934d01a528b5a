package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/bus_booking/internal/core/domain"
	"github.com/srgjo27/bus_booking/internal/core/ports"
)

// SessionState is the booking interaction's lifecycle state.
type SessionState string

const (
	// StateIdle: no bus selected, no booking in progress.
	StateIdle SessionState = "IDLE"
	// StateLoadingSeats: a bus is chosen and the seat-layout request is in flight.
	StateLoadingSeats SessionState = "LOADING_SEATS"
	// StateSelecting: layout loaded; the user is picking seats, entering
	// passengers, or applying a coupon.
	StateSelecting SessionState = "SELECTING"
	// StateSubmitting: the booking request is in flight.
	StateSubmitting SessionState = "SUBMITTING"
)

// ErrInvalidState is returned when an operation is called outside the
// state it is valid in.
var ErrInvalidState = errors.New("operation not valid in current session state")

// BookingSession owns all booking-scoped state: the selected bus, the
// seat map, the fare basis, the applied coupon, and the passenger
// roster. Every mutation goes through its operations; it reacts to
// seat-map changes by recomputing the fare and resizing the roster
// before control returns to the caller.
//
// The session is single-threaded by contract: each operation runs to
// completion before the next event is dispatched. The two asynchronous
// operations are split in two phases — the caller performs the remote
// call (FetchSeatLayout, SubmitBooking, both state-free) off the event
// loop and feeds the result back in via SeatLayoutLoaded /
// BookingFinished on it.
type BookingSession struct {
	api      ports.TripService
	notifier ports.Notifier
	logger   *zap.Logger

	id         uuid.UUID
	state      SessionState
	bus        *domain.Bus
	travelDate string
	seatMap    *SeatMap
	roster     *PassengerRoster
	fareBasis  float64
	coupon     string
	total      float64
}

func NewBookingSession(api ports.TripService, notifier ports.Notifier, logger *zap.Logger) *BookingSession {
	return &BookingSession{
		api:      api,
		notifier: notifier,
		logger:   logger,
		id:       uuid.New(),
		state:    StateIdle,
		seatMap:  NewSeatMap(),
		roster:   NewPassengerRoster(),
	}
}

func (s *BookingSession) State() SessionState      { return s.state }
func (s *BookingSession) Bus() *domain.Bus         { return s.bus }
func (s *BookingSession) TravelDate() string       { return s.travelDate }
func (s *BookingSession) SeatMap() *SeatMap        { return s.seatMap }
func (s *BookingSession) Roster() *PassengerRoster { return s.roster }
func (s *BookingSession) FareBasis() float64       { return s.fareBasis }
func (s *BookingSession) Coupon() string           { return s.coupon }
func (s *BookingSession) Total() float64           { return s.total }

// OpenForBus starts a booking interaction for a bus and travel date.
// Allowed from any state; all booking-scoped state is reset and the
// session moves to LoadingSeats. The caller then runs FetchSeatLayout
// and reports back through SeatLayoutLoaded.
func (s *BookingSession) OpenForBus(bus domain.Bus, travelDate string) {
	s.reset()
	s.bus = &bus
	s.travelDate = travelDate
	s.fareBasis = bus.Fare
	s.state = StateLoadingSeats
	s.logger.Info("booking session opened",
		zap.String("session_id", s.id.String()),
		zap.Int64("bus_id", bus.ID),
		zap.String("date", travelDate))
}

// FetchSeatLayout performs the seat-layout request for the currently
// opened bus. It mutates nothing and is safe to run off the event loop.
func (s *BookingSession) FetchSeatLayout(ctx context.Context) (*domain.SeatLayout, error) {
	bus, date := s.bus, s.travelDate
	if bus == nil {
		return nil, ErrInvalidState
	}
	return s.api.GetSeatLayout(ctx, bus.ID, date)
}

// SeatLayoutLoaded completes the LoadingSeats phase. On a fetch error
// the session degrades to the fallback layout instead of blocking the
// user; either way it ends up in Selecting with an empty selection.
func (s *BookingSession) SeatLayoutLoaded(layout *domain.SeatLayout, err error) {
	if s.state != StateLoadingSeats {
		s.logger.Warn("seat layout result ignored",
			zap.String("session_id", s.id.String()),
			zap.String("state", string(s.state)))
		return
	}
	if err != nil || layout == nil {
		s.logger.Warn("seat layout fetch failed, using fallback",
			zap.String("session_id", s.id.String()),
			zap.Error(err))
		s.notifier.Notify(ports.LevelWarning, "Could not load live seat availability")
		layout = domain.FallbackSeatLayout()
	}
	s.seatMap.Load(layout)
	if layout.Fare > 0 {
		s.fareBasis = layout.Fare
	} else if s.bus != nil {
		s.fareBasis = s.bus.Fare
	}
	s.roster.Resize(0)
	s.recompute()
	s.state = StateSelecting
}

// ToggleSeat flips one seat's selection state. Valid only in Selecting.
// On a successful change the fare is recomputed and the roster resized
// to the new selection count before returning.
func (s *BookingSession) ToggleSeat(label string) error {
	if s.state != StateSelecting {
		return ErrInvalidState
	}
	outcome, err := s.seatMap.Toggle(label)
	if err != nil {
		return err
	}
	switch outcome {
	case ToggleRejectedBooked:
		s.notifier.Notify(ports.LevelWarning, fmt.Sprintf("Seat %s is already booked", label))
		return nil
	case ToggleRejectedCap:
		s.notifier.Notify(ports.LevelWarning, fmt.Sprintf("Max %d seats per booking", SelectionCap))
		return nil
	}
	s.recompute()
	s.roster.Resize(s.seatMap.SelectionCount())
	return nil
}

// ApplyCoupon normalizes and applies a coupon code. Valid only in
// Selecting. The outcome is always user-visible: either the discount is
// applied or the code is rejected (a rejected code also clears any
// previously applied discount).
func (s *BookingSession) ApplyCoupon(code string) error {
	if s.state != StateSelecting {
		return ErrInvalidState
	}
	normalized := domain.NormalizeCoupon(code)
	if domain.CouponValid(normalized) {
		s.coupon = normalized
		s.recompute()
		s.notifier.Notify(ports.LevelSuccess,
			fmt.Sprintf("Coupon %s applied: %d off on total", normalized, domain.CouponDiscount))
	} else {
		s.coupon = ""
		s.recompute()
		s.notifier.Notify(ports.LevelWarning, "Invalid coupon")
	}
	return nil
}

// Confirm validates the roster and builds the booking request. Valid
// only in Selecting; a Confirm while a submission is already in flight
// is rejected by the state check. On success the session moves to
// Submitting and the caller runs SubmitBooking, reporting back through
// BookingFinished. The returned request is nil when confirmation was
// refused (the user has already been notified why).
func (s *BookingSession) Confirm() (*domain.BookingRequest, error) {
	if s.state != StateSelecting {
		return nil, ErrInvalidState
	}
	count := s.seatMap.SelectionCount()
	if count == 0 {
		s.notifier.Notify(ports.LevelWarning, "Please select seats first")
		return nil, nil
	}
	passengers, err := s.roster.Validate(count)
	if err != nil {
		s.notifier.Notify(ports.LevelWarning, "Please fill all passenger details correctly")
		return nil, nil
	}
	contactName := passengers[0].Name
	if contactName == "" {
		contactName = "Guest"
	}
	req := &domain.BookingRequest{
		BusID:       s.bus.ID,
		Name:        contactName,
		Phone:       passengers[0].Phone,
		Seats:       count,
		SeatNumbers: s.seatMap.Selection(),
		Date:        s.travelDate,
		CouponCode:  s.coupon,
		Passengers:  passengers,
	}
	s.state = StateSubmitting
	s.logger.Info("booking submitted",
		zap.String("session_id", s.id.String()),
		zap.Int64("bus_id", req.BusID),
		zap.Int("seats", count),
		zap.Float64("total", s.total))
	return req, nil
}

// SubmitBooking performs the booking request. It mutates nothing and is
// safe to run off the event loop.
func (s *BookingSession) SubmitBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResponse, error) {
	return s.api.CreateBooking(ctx, req)
}

// BookingFinished completes the Submitting phase. Failure rolls back to
// Selecting with seats, passengers, and coupon intact for retry;
// success closes the session and clears all booking-scoped state.
func (s *BookingSession) BookingFinished(resp *domain.BookingResponse, err error) {
	if s.state != StateSubmitting {
		s.logger.Warn("booking result ignored",
			zap.String("session_id", s.id.String()),
			zap.String("state", string(s.state)))
		return
	}
	if err != nil || !resp.Succeeded() {
		s.logger.Error("booking failed",
			zap.String("session_id", s.id.String()),
			zap.Error(err))
		s.notifier.Notify(ports.LevelError, "Something went wrong")
		s.state = StateSelecting
		return
	}
	s.logger.Info("booking confirmed",
		zap.String("session_id", s.id.String()),
		zap.Int64("booking_id", resp.BookingID))
	s.notifier.Notify(ports.LevelSuccess, "Booking successful!")
	s.reset()
}

// Close abandons the current interaction and returns to Idle.
func (s *BookingSession) Close() {
	s.reset()
}

// recompute derives the total from the current selection count, fare
// basis, and applied coupon. Runs synchronously inside every operation
// that changes any of those inputs.
func (s *BookingSession) recompute() {
	s.total = domain.TotalFare(s.seatMap.SelectionCount(), s.fareBasis, s.coupon)
}

func (s *BookingSession) reset() {
	s.state = StateIdle
	s.bus = nil
	s.travelDate = ""
	s.seatMap = NewSeatMap()
	s.roster = NewPassengerRoster()
	s.fareBasis = 0
	s.coupon = ""
	s.total = 0
}
