package domain

import (
	"strconv"
	"strings"
)

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Passenger is one traveller on a booking. A passenger corresponds to a
// selected seat by position, not by seat label; position 0 is the
// contact passenger whose name and phone go on the booking itself.
type Passenger struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Age    *int   `json:"age"`
	Gender Gender `json:"gender"`
}

// Trimmed returns a copy with surrounding whitespace removed from the
// free-text fields.
func (p Passenger) Trimmed() Passenger {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	return p
}

// HasValidName reports whether the trimmed name meets the two-character
// minimum required for submission.
func (p Passenger) HasValidName() bool {
	return len(strings.TrimSpace(p.Name)) >= 2
}

// ParseAge interprets a free-text age field. Age is optional: empty,
// non-numeric, or non-positive input yields nil rather than an error.
func ParseAge(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}
