package domain

import "strings"

// CouponTrip100 is the only recognized coupon code. It grants a flat
// discount off the booking total.
const CouponTrip100 = "TRIP100"

// CouponDiscount is the amount CouponTrip100 takes off the total, in
// the service's currency unit.
const CouponDiscount = 100

// NormalizeCoupon canonicalizes user input before matching: surrounding
// whitespace is stripped and the code is uppercased.
func NormalizeCoupon(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CouponValid reports whether a normalized code is recognized.
func CouponValid(code string) bool {
	return code == CouponTrip100
}

// Discount returns the discount granted by a normalized coupon code.
func Discount(code string) float64 {
	if CouponValid(code) {
		return CouponDiscount
	}
	return 0
}
