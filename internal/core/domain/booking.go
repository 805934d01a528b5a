package domain

// BookingRequest is the payload posted to the booking endpoint. It is
// assembled once at confirmation time and never mutated afterwards.
type BookingRequest struct {
	BusID       int64       `json:"bus_id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Seats       int         `json:"seats"`
	SeatNumbers []string    `json:"seat_numbers"`
	Date        string      `json:"date"`
	CouponCode  string      `json:"coupon_code"`
	Passengers  []Passenger `json:"passengers"`
}

// BookingResponse is the service's answer to a booking submission. Any
// status other than "success" counts as a failed booking, even on a 2xx
// HTTP response.
type BookingResponse struct {
	Status    string `json:"status"`
	BookingID int64  `json:"booking_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Succeeded reports whether the service accepted the booking.
func (r *BookingResponse) Succeeded() bool {
	return r != nil && r.Status == "success"
}
