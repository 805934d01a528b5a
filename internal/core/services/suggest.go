package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/srgjo27/bus_booking/internal/core/ports"
)

// DefaultDebounceWindow is how long a Suggester waits after the last
// keystroke before issuing a request.
const DefaultDebounceWindow = 200 * time.Millisecond

// MaxSuggestions caps how many items one delivery carries.
const MaxSuggestions = 8

const suggestTimeout = 5 * time.Second

// Suggester turns a stream of keystrokes into debounced location
// lookups. Only the last input inside the debounce window issues a
// request, and a monotonically increasing generation counter discards
// responses that arrive after newer input. Fetch failures are silent:
// suggestions are a convenience, not a required feature.
//
// Deliveries arrive on the channel returned by Updates, from the
// timer's goroutine; consumers receive from it on their own event loop.
type Suggester struct {
	api    ports.TripService
	logger *zap.Logger
	window time.Duration
	out    chan []string

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewSuggester builds a Suggester with the given debounce window; a
// non-positive window falls back to DefaultDebounceWindow.
func NewSuggester(api ports.TripService, window time.Duration, logger *zap.Logger) *Suggester {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Suggester{
		api:    api,
		logger: logger,
		window: window,
		out:    make(chan []string, 4),
	}
}

// Updates returns the delivery channel. Each value is a complete
// replacement of the previous suggestion list; nil clears it.
func (s *Suggester) Updates() <-chan []string {
	return s.out
}

// Input registers a keystroke. An empty query cancels any pending
// request and clears the suggestions immediately.
func (s *Suggester) Input(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if query == "" {
		s.deliver(nil)
		return
	}
	gen := s.gen
	s.timer = time.AfterFunc(s.window, func() {
		s.fetch(gen, query)
	})
}

// Cancel drops any pending request and invalidates in-flight responses
// (used when the input loses focus or a suggestion is picked).
func (s *Suggester) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Suggester) fetch(gen uint64, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), suggestTimeout)
	defer cancel()
	items, err := s.api.SuggestLocations(ctx, query)
	if err != nil {
		s.logger.Debug("suggestion fetch failed", zap.String("query", query), zap.Error(err))
		return
	}
	if len(items) > MaxSuggestions {
		items = items[:MaxSuggestions]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logger.Debug("stale suggestion response discarded", zap.String("query", query))
		return
	}
	s.deliver(items)
}

// deliver pushes without blocking; if the consumer is behind, the
// oldest pending delivery is dropped in favour of the newest.
func (s *Suggester) deliver(items []string) {
	for {
		select {
		case s.out <- items:
			return
		default:
			select {
			case <-s.out:
			default:
			}
		}
	}
}
