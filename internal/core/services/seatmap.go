package services

import (
	"fmt"

	"github.com/srgjo27/bus_booking/internal/core/domain"
)

// SelectionCap is the maximum number of seats one booking may include.
const SelectionCap = 6

// ToggleOutcome reports what a SeatMap.Toggle call did.
type ToggleOutcome int

const (
	// ToggleSelected: the label was appended to the selection.
	ToggleSelected ToggleOutcome = iota
	// ToggleDeselected: the label was removed from the selection.
	ToggleDeselected
	// ToggleRejectedBooked: the label is booked; no change.
	ToggleRejectedBooked
	// ToggleRejectedCap: the selection is already at SelectionCap; no change.
	ToggleRejectedCap
)

// Changed reports whether the outcome mutated the selection.
func (o ToggleOutcome) Changed() bool {
	return o == ToggleSelected || o == ToggleDeselected
}

// SeatMap holds the seats of the active layout: the ordered labels,
// which are booked (immutable per load), and the ordered selection.
// Selection order is insertion order, independent of the label's
// position in the layout; it governs the positional mapping to
// passenger records.
type SeatMap struct {
	labels   []string
	booked   map[string]struct{}
	selected []string
}

func NewSeatMap() *SeatMap {
	return &SeatMap{booked: map[string]struct{}{}}
}

// Load replaces the layout and unconditionally clears the selection:
// booked status and the fare basis may have changed, so selections
// never survive a reload.
func (m *SeatMap) Load(layout *domain.SeatLayout) {
	m.labels = append([]string(nil), layout.Seats...)
	m.booked = make(map[string]struct{}, len(layout.Booked))
	for _, label := range layout.Booked {
		m.booked[label] = struct{}{}
	}
	m.selected = nil
}

// Toggle flips the selection state of a seat. Booked seats and toggles
// past the selection cap are rejected without mutating anything. A
// label that is not part of the loaded layout indicates a UI/data
// desync and is returned as a hard error.
func (m *SeatMap) Toggle(label string) (ToggleOutcome, error) {
	if !m.contains(label) {
		return 0, fmt.Errorf("seat %q is not part of the loaded layout", label)
	}
	if _, ok := m.booked[label]; ok {
		return ToggleRejectedBooked, nil
	}
	for i, sel := range m.selected {
		if sel == label {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return ToggleDeselected, nil
		}
	}
	if len(m.selected) >= SelectionCap {
		return ToggleRejectedCap, nil
	}
	m.selected = append(m.selected, label)
	return ToggleSelected, nil
}

func (m *SeatMap) contains(label string) bool {
	for _, l := range m.labels {
		if l == label {
			return true
		}
	}
	return false
}

// Labels returns the layout's seat labels in layout order.
func (m *SeatMap) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Selection returns the selected labels in selection order.
func (m *SeatMap) Selection() []string {
	return append([]string(nil), m.selected...)
}

// SelectionCount returns the number of selected seats.
func (m *SeatMap) SelectionCount() int {
	return len(m.selected)
}

// IsBooked reports whether a seat was booked when the layout loaded.
func (m *SeatMap) IsBooked(label string) bool {
	_, ok := m.booked[label]
	return ok
}

// IsSelected reports whether a seat is currently selected.
func (m *SeatMap) IsSelected(label string) bool {
	for _, sel := range m.selected {
		if sel == label {
			return true
		}
	}
	return false
}
