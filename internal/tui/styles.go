package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	completedStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	priorityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	priorityMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	priorityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Faint(true)

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	formLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))
)

// priorityStyle picks the color for a priority badge.
func priorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "High":
		return priorityHighStyle
	case "Low":
		return priorityLowStyle
	default:
		return priorityMediumStyle
	}
}
