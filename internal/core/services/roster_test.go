package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/bus_booking/internal/core/domain"
	"github.com/srgjo27/bus_booking/internal/core/services"
)

func TestRoster_ResizePreservesSurvivingPositions(t *testing.T) {
	r := services.NewPassengerRoster()
	r.Resize(3)
	require.NoError(t, r.Update(0, domain.Passenger{Name: "Asha"}))
	require.NoError(t, r.Update(1, domain.Passenger{Name: "Ravi"}))
	require.NoError(t, r.Update(2, domain.Passenger{Name: "Meena"}))

	r.Resize(1)
	r.Resize(4)

	records := r.Records()
	require.Len(t, records, 4)
	assert.Equal(t, "Asha", records[0].Name)
	assert.Empty(t, records[1].Name, "re-grown slots start empty")
	assert.Empty(t, records[3].Name)
}

func TestRoster_ResizeGrowShrinkSequence(t *testing.T) {
	r := services.NewPassengerRoster()
	for _, n := range []int{2, 5, 3, 6, 1, 0, 2} {
		before := r.Records()
		r.Resize(n)
		after := r.Records()
		require.Len(t, after, n)
		for i := 0; i < len(before) && i < n; i++ {
			assert.Equal(t, before[i], after[i], "position %d changed during resize to %d", i, n)
		}
	}
}

func TestRoster_ValidateRequiresNames(t *testing.T) {
	r := services.NewPassengerRoster()
	r.Resize(2)
	require.NoError(t, r.Update(0, domain.Passenger{Name: "  Asha  ", Phone: "999"}))

	_, err := r.Validate(2)
	assert.ErrorIs(t, err, services.ErrIncompletePassengers)

	require.NoError(t, r.Update(1, domain.Passenger{Name: " R "}))
	_, err = r.Validate(2)
	assert.ErrorIs(t, err, services.ErrIncompletePassengers, "one-char name after trimming fails")

	require.NoError(t, r.Update(1, domain.Passenger{Name: "Ravi"}))
	passengers, err := r.Validate(2)
	require.NoError(t, err)
	require.Len(t, passengers, 2)
	assert.Equal(t, "Asha", passengers[0].Name, "names are trimmed for submission")
}

func TestRoster_ValidateFewerRecordsThanSeats(t *testing.T) {
	r := services.NewPassengerRoster()
	r.Resize(1)
	require.NoError(t, r.Update(0, domain.Passenger{Name: "Asha"}))

	_, err := r.Validate(2)
	assert.ErrorIs(t, err, services.ErrIncompletePassengers)
}

func TestRoster_ValidateSubsetOnly(t *testing.T) {
	// Only the first n records are validated and returned.
	r := services.NewPassengerRoster()
	r.Resize(3)
	require.NoError(t, r.Update(0, domain.Passenger{Name: "Asha"}))
	require.NoError(t, r.Update(1, domain.Passenger{Name: "Ravi"}))

	passengers, err := r.Validate(2)
	require.NoError(t, err)
	assert.Len(t, passengers, 2)
}

func TestRoster_UpdateOutOfRange(t *testing.T) {
	r := services.NewPassengerRoster()
	r.Resize(1)
	assert.Error(t, r.Update(1, domain.Passenger{}))
	assert.Error(t, r.Update(-1, domain.Passenger{}))
}
