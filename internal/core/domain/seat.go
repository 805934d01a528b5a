package domain

import "strconv"

// DefaultLayoutShape is the seat arrangement assumed when the service
// does not report one.
const DefaultLayoutShape = "2x2"

// FallbackSeatCount is the seat count used when the seat-layout request
// fails and the session degrades to an all-available layout.
const FallbackSeatCount = 40

// SeatLayout describes the seats of one bus for one travel date: the
// ordered labels, which of them are already booked, and the per-seat
// fare for that date. Fetched fresh every time a bus is opened for
// booking and discarded afterwards.
type SeatLayout struct {
	Fare       float64  `json:"fare"`
	SeatsTotal int      `json:"seats_total"`
	Seats      []string `json:"seats"`
	Booked     []string `json:"booked"`
	Layout     string   `json:"layout"`
}

// FallbackSeatLayout returns the conservative layout used when seat
// availability cannot be fetched: 40 seats labelled "1".."40", none
// booked, no per-seat fare (the bus base fare applies).
func FallbackSeatLayout() *SeatLayout {
	seats := make([]string, FallbackSeatCount)
	for i := range seats {
		seats[i] = strconv.Itoa(i + 1)
	}
	return &SeatLayout{
		SeatsTotal: FallbackSeatCount,
		Seats:      seats,
		Layout:     DefaultLayoutShape,
	}
}
