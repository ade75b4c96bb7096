package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the HireMind client.
const (
	primaryColor   = "#2563EB" // Blue
	secondaryColor = "#10B981" // Green
	warningColor   = "#F59E0B" // Amber
	errorColor     = "#EF4444" // Red
	dimColor       = "#6B7280" // Gray
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box with primary color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 2)

	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// SelectedStyle highlights selected items in primary color.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SuccessStyle renders success messages in green.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// WarningStyle renders warning/notice messages in amber.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor))

	// ActiveTabStyle renders the active nav entry.
	ActiveTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(primaryColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)

	// InactiveTabStyle renders inactive nav entries.
	InactiveTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#374151")).
				Foreground(lipgloss.Color("#9CA3AF")).
				Padding(0, 2)

	// MatchedTagStyle renders matched skill tags.
	MatchedTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor)).
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	// MissingTagStyle renders missing skill tags.
	MissingTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor)).
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	// GaugeFullStyle renders the filled portion of the score dial.
	GaugeFullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))

	// GaugeEmptyStyle renders the unfilled portion of the score dial.
	GaugeEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))
)
