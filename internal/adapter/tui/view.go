package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/srgjo27/bus_booking/internal/core/domain"
	"github.com/srgjo27/bus_booking/internal/core/services"
)

// seatsPerRow mirrors the "2x2" layout shape: four seats per row with
// an aisle after the second.
const seatsPerRow = 4

const skeletonRows = 6

func (m *Model) View() string {
	var body string
	if m.screen == screenBooking {
		body = m.viewBooking()
	} else {
		body = m.viewSearch()
	}
	if toasts := m.viewToasts(); toasts != "" {
		body += "\n" + toasts
	}
	return body + "\n"
}

func (m *Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Bus Booking"))
	b.WriteString("\n")

	labels := []string{"From", "To", "Date", "Operator", "Type", "Fare min", "Fare max"}
	var fields []string
	for i, input := range m.inputs {
		label := labelStyle
		if m.focus == i {
			label = focusedLabelStyle
		}
		fields = append(fields, label.Render(labels[i])+" "+input.View())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, fields[fieldFrom], "  ", fields[fieldTo], "  ", fields[fieldDate]))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, fields[fieldOperator], "  ", fields[fieldType], "  ", fields[fieldFareMin], "  ", fields[fieldFareMax]))
	b.WriteString("\n")

	if m.suggestionsVisible() {
		for i, item := range m.suggestions {
			style := suggestionStyle
			if i == m.suggestCursor {
				style = suggestionCursorStyle
			}
			b.WriteString("  " + style.Render(item) + "\n")
		}
	}

	b.WriteString(m.viewTripSummary())
	b.WriteString("\n")

	switch {
	case m.searching:
		for i := 0; i < skeletonRows; i++ {
			b.WriteString(skeletonStyle.Render("░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░") + "\n")
		}
	case len(m.sorted) == 0:
		if m.hasSearched {
			b.WriteString(labelStyle.Render("No buses found") + "\n")
		}
	default:
		for i, result := range m.sorted {
			b.WriteString(m.viewBusCard(result, m.focus == fieldCount && i == m.resultCursor))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("tab focus • enter search/select • ctrl+s sort • ctrl+c quit"))
	return b.String()
}

func (m *Model) viewTripSummary() string {
	from := strings.TrimSpace(m.inputs[fieldFrom].Value())
	to := strings.TrimSpace(m.inputs[fieldTo].Value())
	date := strings.TrimSpace(m.inputs[fieldDate].Value())
	route := "—"
	if from != "" && to != "" {
		route = from + " → " + to
	}
	summary := route
	if date != "" {
		summary += " • " + date
	}
	summary += " • Sort: " + services.SortLabel(m.sortMode)
	return labelStyle.Render(summary)
}

func (m *Model) viewBusCard(result services.BusResult, selected bool) string {
	var badges []string
	if result.Bestseller {
		badges = append(badges, badgeGold.Render("Bestseller"))
	}
	if result.Trusted {
		badges = append(badges, badgeGreen.Render("Trusted"))
	}
	if result.OnTime {
		badges = append(badges, badgeBlue.Render("On-time"))
	}

	header := fmt.Sprintf("%s  %s", result.Name, fareStyle.Render(fmt.Sprintf("₹%.0f", result.Fare)))
	meta := fmt.Sprintf("★ %.1f (%d reviews)  %s → %s  %s • %s",
		result.Rating, result.RatingCount,
		result.FromCity, result.ToCity,
		result.DepartTime, result.ArriveTime)
	amenities := strings.Join(result.Amenities, " · ")

	lines := []string{header}
	if len(badges) > 0 {
		lines = append(lines, strings.Join(badges, " "))
	}
	lines = append(lines, meta, labelStyle.Render(amenities))

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewBooking() string {
	var b strings.Builder
	if bus := m.session.Bus(); bus != nil {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s • %s → %s • %s", bus.Name, bus.FromCity, bus.ToCity, bus.DepartTime)))
		b.WriteString("\n")
	}

	if m.session.State() == services.StateLoadingSeats {
		b.WriteString(skeletonStyle.Render("Loading seats…") + "\n")
		return b.String()
	}

	b.WriteString(m.viewSeatGrid())
	b.WriteString("\n")
	b.WriteString(m.viewFareSummary())
	b.WriteString("\n")
	b.WriteString(m.viewPassengers())
	b.WriteString(m.viewCoupon())

	if m.submitting {
		b.WriteString(skeletonStyle.Render("Processing…") + "\n")
	}
	b.WriteString(helpStyle.Render("space toggle seat • tab section • ctrl+b confirm • esc close"))
	return b.String()
}

func (m *Model) viewSeatGrid() string {
	seatMap := m.session.SeatMap()
	labels := seatMap.Labels()
	var rows []string
	var row []string
	for i, label := range labels {
		style := seatAvailableStyle
		switch {
		case m.zone == zoneSeats && i == m.seatCursor:
			style = seatCursorStyle
		case seatMap.IsSelected(label):
			style = seatSelectedStyle
		case seatMap.IsBooked(label):
			style = seatBookedStyle
		}
		row = append(row, style.Render(fmt.Sprintf("%3s", label)))
		if i%seatsPerRow == 1 {
			row = append(row, "  ") // aisle
		}
		if i%seatsPerRow == seatsPerRow-1 || i == len(labels)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewFareSummary() string {
	count := m.session.SeatMap().SelectionCount()
	line := fmt.Sprintf("Seats: %d • Fare/seat: %.0f • Total: %s",
		count, m.session.FareBasis(), fareStyle.Render(fmt.Sprintf("₹%.0f", m.session.Total())))
	if coupon := m.session.Coupon(); coupon != "" {
		line += labelStyle.Render(fmt.Sprintf("  (coupon %s: -%d)", coupon, domain.CouponDiscount))
	}
	return line
}

func (m *Model) viewPassengers() string {
	if len(m.passInputs) == 0 {
		return ""
	}
	var b strings.Builder
	selection := m.session.SeatMap().Selection()
	for row, inputs := range m.passInputs {
		seat := ""
		if row < len(selection) {
			seat = " (seat " + selection[row] + ")"
		}
		label := labelStyle
		if m.zone == zonePassengers && row == m.passRow {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(fmt.Sprintf("Passenger %d%s", row+1, seat)))
		b.WriteString("\n  ")
		var fields []string
		for _, input := range inputs {
			fields = append(fields, input.View())
		}
		gender := string(m.genders[row])
		if gender == "" {
			gender = "--"
		}
		genderLabel := labelStyle
		if m.zone == zonePassengers && row == m.passRow && m.passField == passFieldGender {
			genderLabel = focusedLabelStyle
		}
		fields = append(fields, genderLabel.Render("Gender ‹"+gender+"›"))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(fields, " ")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewCoupon() string {
	label := labelStyle
	if m.zone == zoneCoupon {
		label = focusedLabelStyle
	}
	return label.Render("Coupon") + " " + m.coupon.View() + "\n"
}

func (m *Model) viewToasts() string {
	active := m.toasts.Active()
	if len(active) == 0 {
		return ""
	}
	var lines []string
	for _, t := range active {
		lines = append(lines, toastStyles[t.level].Render("• "+t.message))
	}
	return strings.Join(lines, "\n")
}
