package services

import (
	"errors"
	"fmt"

	"github.com/srgjo27/bus_booking/internal/core/domain"
)

// ErrIncompletePassengers is returned by Validate when the roster is
// shorter than required or a required name is missing/too short.
var ErrIncompletePassengers = errors.New("passenger details incomplete")

// PassengerRoster is the single source of truth for entered passenger
// data. Its length tracks the current seat-selection count; rendering
// is a projection of it and edits flow back in through Update, never by
// re-reading rendered output.
type PassengerRoster struct {
	records []domain.Passenger
}

func NewPassengerRoster() *PassengerRoster {
	return &PassengerRoster{}
}

// Resize grows or shrinks the roster to n records, adjusting length at
// the tail only. Surviving positions keep their entered values; new
// positions start empty.
func (r *PassengerRoster) Resize(n int) {
	if n < 0 {
		n = 0
	}
	for len(r.records) < n {
		r.records = append(r.records, domain.Passenger{})
	}
	r.records = r.records[:n]
}

// Update replaces the record at position i.
func (r *PassengerRoster) Update(i int, p domain.Passenger) error {
	if i < 0 || i >= len(r.records) {
		return fmt.Errorf("passenger index %d out of range (roster has %d)", i, len(r.records))
	}
	r.records[i] = p
	return nil
}

// Len returns the current number of records.
func (r *PassengerRoster) Len() int {
	return len(r.records)
}

// Records returns a copy of the roster in positional order.
func (r *PassengerRoster) Records() []domain.Passenger {
	return append([]domain.Passenger(nil), r.records...)
}

// Validate checks the first n records and returns them trimmed for
// submission. It fails with ErrIncompletePassengers if fewer than n
// records exist or any required name is shorter than two characters
// after trimming.
func (r *PassengerRoster) Validate(n int) ([]domain.Passenger, error) {
	if len(r.records) < n {
		return nil, ErrIncompletePassengers
	}
	out := make([]domain.Passenger, 0, n)
	for _, p := range r.records[:n] {
		if !p.HasValidName() {
			return nil, ErrIncompletePassengers
		}
		out = append(out, p.Trimmed())
	}
	return out, nil
}
