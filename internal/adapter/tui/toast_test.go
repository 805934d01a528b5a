package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/bus_booking/internal/core/ports"
)

func TestToastCenter_ExpiresInOrder(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	center := NewToastCenter()
	center.now = func() time.Time { return now }

	center.Notify(ports.LevelSuccess, "Booking successful!")
	now = now.Add(2 * time.Second)
	center.Notify(ports.LevelWarning, "Invalid coupon")

	assert.True(t, center.Expire())
	assert.Len(t, center.Active(), 2)

	// First toast is past its 3s lifetime, second is not.
	now = now.Add(1500 * time.Millisecond)
	assert.True(t, center.Expire())
	active := center.Active()
	assert.Len(t, active, 1)
	assert.Equal(t, "Invalid coupon", active[0].message)

	now = now.Add(2 * time.Second)
	assert.False(t, center.Expire())
	assert.Empty(t, center.Active())
}
