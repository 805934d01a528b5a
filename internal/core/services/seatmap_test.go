package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/bus_booking/internal/core/domain"
	"github.com/srgjo27/bus_booking/internal/core/services"
)

func loadedSeatMap(t *testing.T, seats []string, booked []string) *services.SeatMap {
	t.Helper()
	m := services.NewSeatMap()
	m.Load(&domain.SeatLayout{Seats: seats, Booked: booked, SeatsTotal: len(seats)})
	return m
}

func TestSeatMap_ToggleSelectsAndDeselects(t *testing.T) {
	m := loadedSeatMap(t, []string{"1", "2", "3", "4"}, nil)

	outcome, err := m.Toggle("3")
	require.NoError(t, err)
	assert.Equal(t, services.ToggleSelected, outcome)
	assert.Equal(t, []string{"3"}, m.Selection())

	outcome, err = m.Toggle("1")
	require.NoError(t, err)
	assert.Equal(t, services.ToggleSelected, outcome)
	// Selection order is insertion order, not layout order.
	assert.Equal(t, []string{"3", "1"}, m.Selection())

	outcome, err = m.Toggle("3")
	require.NoError(t, err)
	assert.Equal(t, services.ToggleDeselected, outcome)
	assert.Equal(t, []string{"1"}, m.Selection())
}

func TestSeatMap_TogglePairIsIdempotent(t *testing.T) {
	m := loadedSeatMap(t, []string{"1", "2", "3"}, nil)
	_, err := m.Toggle("2")
	require.NoError(t, err)
	before := m.Selection()

	_, err = m.Toggle("1")
	require.NoError(t, err)
	_, err = m.Toggle("1")
	require.NoError(t, err)
	assert.Equal(t, before, m.Selection())
}

func TestSeatMap_BookedSeatRejected(t *testing.T) {
	m := loadedSeatMap(t, []string{"1", "2"}, []string{"2"})

	outcome, err := m.Toggle("2")
	require.NoError(t, err)
	assert.Equal(t, services.ToggleRejectedBooked, outcome)
	assert.False(t, outcome.Changed())
	assert.Empty(t, m.Selection())
}

func TestSeatMap_SelectionCap(t *testing.T) {
	seats := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	m := loadedSeatMap(t, seats, nil)
	for _, label := range seats[:services.SelectionCap] {
		outcome, err := m.Toggle(label)
		require.NoError(t, err)
		assert.Equal(t, services.ToggleSelected, outcome)
	}

	outcome, err := m.Toggle("7")
	require.NoError(t, err)
	assert.Equal(t, services.ToggleRejectedCap, outcome)
	assert.Len(t, m.Selection(), services.SelectionCap)

	// Deselecting keeps working at the cap.
	outcome, err = m.Toggle("1")
	require.NoError(t, err)
	assert.Equal(t, services.ToggleDeselected, outcome)
	assert.Len(t, m.Selection(), services.SelectionCap-1)
}

func TestSeatMap_UnknownLabelIsAnError(t *testing.T) {
	m := loadedSeatMap(t, []string{"1"}, nil)
	_, err := m.Toggle("99")
	assert.Error(t, err)
}

func TestSeatMap_LoadClearsSelection(t *testing.T) {
	m := loadedSeatMap(t, []string{"1", "2"}, nil)
	_, err := m.Toggle("1")
	require.NoError(t, err)

	m.Load(&domain.SeatLayout{Seats: []string{"1", "2"}, Booked: []string{"1"}})
	assert.Empty(t, m.Selection())
	assert.True(t, m.IsBooked("1"))
}
