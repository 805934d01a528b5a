package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/bus_booking/internal/core/domain"
)

func TestTotalFare_NeverNegative(t *testing.T) {
	coupons := []string{"", domain.CouponTrip100, "BOGUS"}
	for seats := 0; seats <= 8; seats++ {
		for _, fare := range []float64{0, 10, 99.5, 500} {
			for _, coupon := range coupons {
				total := domain.TotalFare(seats, fare, coupon)
				assert.GreaterOrEqual(t, total, 0.0,
					"seats=%d fare=%v coupon=%q", seats, fare, coupon)
			}
		}
	}
}

func TestTotalFare_CouponReducesByExactly100(t *testing.T) {
	base := domain.TotalFare(3, 500, "")
	discounted := domain.TotalFare(3, 500, domain.CouponTrip100)
	assert.Equal(t, 1500.0, base)
	assert.Equal(t, base-100, discounted)

	// Discount larger than the base floors at zero.
	assert.Equal(t, 0.0, domain.TotalFare(1, 50, domain.CouponTrip100))
}

func TestTotalFare_ZeroSeats(t *testing.T) {
	assert.Equal(t, 0.0, domain.TotalFare(0, 500, ""))
	assert.Equal(t, 0.0, domain.TotalFare(0, 500, domain.CouponTrip100))
}

func TestTotalFare_UnrecognizedCouponNoDiscount(t *testing.T) {
	assert.Equal(t, 1000.0, domain.TotalFare(2, 500, "TRIP50"))
}

func TestNormalizeCoupon(t *testing.T) {
	assert.Equal(t, "TRIP100", domain.NormalizeCoupon("  trip100 "))
	assert.True(t, domain.CouponValid(domain.NormalizeCoupon("trip100")))
	assert.False(t, domain.CouponValid("TRIP100 "))
}

func TestParseAge(t *testing.T) {
	age := domain.ParseAge(" 42 ")
	if assert.NotNil(t, age) {
		assert.Equal(t, 42, *age)
	}
	assert.Nil(t, domain.ParseAge(""))
	assert.Nil(t, domain.ParseAge("abc"))
	assert.Nil(t, domain.ParseAge("-3"))
	assert.Nil(t, domain.ParseAge("0"))
}
