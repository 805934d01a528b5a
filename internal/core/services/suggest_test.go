package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/srgjo27/bus_booking/internal/core/ports/mocks"
	"github.com/srgjo27/bus_booking/internal/core/services"
)

func receiveSuggestions(t *testing.T, sg *services.Suggester) []string {
	t.Helper()
	select {
	case items := <-sg.Updates():
		return items
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for suggestions")
		return nil
	}
}

func TestSuggester_DebounceOnlyLastInputFires(t *testing.T) {
	api := mocks.NewTripService(t)
	api.On("SuggestLocations", mock.Anything, "del").Return([]string{"Delhi"}, nil).Once()

	sg := services.NewSuggester(api, 40*time.Millisecond, zap.NewNop())
	sg.Input("d")
	sg.Input("de")
	sg.Input("del")

	assert.Equal(t, []string{"Delhi"}, receiveSuggestions(t, sg))
	api.AssertNumberOfCalls(t, "SuggestLocations", 1)
}

func TestSuggester_EmptyInputClearsImmediately(t *testing.T) {
	api := mocks.NewTripService(t)

	sg := services.NewSuggester(api, 40*time.Millisecond, zap.NewNop())
	sg.Input("x")
	sg.Input("")

	assert.Nil(t, receiveSuggestions(t, sg))
	// The pending "x" lookup was cancelled before its window elapsed.
	time.Sleep(100 * time.Millisecond)
	api.AssertNotCalled(t, "SuggestLocations")
}

func TestSuggester_CapsDeliveries(t *testing.T) {
	api := mocks.NewTripService(t)
	many := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	api.On("SuggestLocations", mock.Anything, "a").Return(many, nil).Once()

	sg := services.NewSuggester(api, 10*time.Millisecond, zap.NewNop())
	sg.Input("a")

	items := receiveSuggestions(t, sg)
	assert.Len(t, items, services.MaxSuggestions)
}

func TestSuggester_StaleResponseDiscarded(t *testing.T) {
	api := mocks.NewTripService(t)
	api.On("SuggestLocations", mock.Anything, "ab").
		Run(func(mock.Arguments) { time.Sleep(80 * time.Millisecond) }).
		Return([]string{"Abu Road"}, nil).Once()

	sg := services.NewSuggester(api, 10*time.Millisecond, zap.NewNop())
	sg.Input("ab")
	time.Sleep(40 * time.Millisecond) // request now in flight
	sg.Cancel()

	select {
	case items := <-sg.Updates():
		t.Fatalf("stale delivery leaked through: %v", items)
	case <-time.After(250 * time.Millisecond):
	}
}

func TestSuggester_FetchFailureIsSilent(t *testing.T) {
	api := mocks.NewTripService(t)
	api.On("SuggestLocations", mock.Anything, "q").
		Return(nil, assert.AnError).Once()

	sg := services.NewSuggester(api, 10*time.Millisecond, zap.NewNop())
	sg.Input("q")

	select {
	case items := <-sg.Updates():
		t.Fatalf("unexpected delivery after failed fetch: %v", items)
	case <-time.After(250 * time.Millisecond):
	}
}
