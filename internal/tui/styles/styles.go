// ABOUTME: Shared lipgloss styles for the admin console TUI
// ABOUTME: Colors, panels, badges, and text styles used across screens

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Accent    = lipgloss.Color("#60A5FA") // Lighter blue for highlights
	Surface   = lipgloss.Color("#374151") // Elevated surface background

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status badges for record state columns
	StatusActive = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusInactive = lipgloss.NewStyle().
			Foreground(Muted)

	StatusError = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Modal is the delete confirmation box
	Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Danger).
		Padding(1, 3)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// Pagination footer pieces
	PageCurrent = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Padding(0, 1).
			Bold(true)

	PageOther = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)
)

// StatusBadge renders a record status with a state-appropriate color
func StatusBadge(status string) string {
	switch status {
	case "active", "published", "replied", "closed":
		return StatusActive.Render(status)
	case "inactive", "draft":
		return StatusInactive.Render(status)
	default:
		return status
	}
}
