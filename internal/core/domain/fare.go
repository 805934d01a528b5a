package domain

// TotalFare computes the amount due for a booking: seat count times the
// per-seat fare basis, less any coupon discount, floored at zero. Pure;
// a zero seat count always totals zero.
func TotalFare(seatCount int, perSeatFare float64, coupon string) float64 {
	total := float64(seatCount)*perSeatFare - Discount(coupon)
	if total < 0 {
		return 0
	}
	return total
}
