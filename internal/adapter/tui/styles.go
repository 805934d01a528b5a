package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/srgjo27/bus_booking/internal/core/ports"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("212"))

	skeletonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	badgeGold  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	badgeGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	badgeBlue  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	seatAvailableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 1)

	seatBookedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Strikethrough(true).
			Padding(0, 1)

	seatSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("40")).
				Padding(0, 1)

	seatCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("212")).
			Padding(0, 1)

	fareStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	suggestionCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("212"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

var toastStyles = map[ports.Level]lipgloss.Style{
	ports.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	ports.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
	ports.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	ports.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}
