package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorGreen   = lipgloss.Color("#00FF00")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorMagenta = lipgloss.Color("#FF00FF")
	ColorBlue    = lipgloss.Color("#5F87FF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	WarnTextStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	GroupStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	PanelTitleActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true).
			Underline(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	KindBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)
)

// Markup styles.
var (
	BoldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Underline(true)

	MarkupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan)
)

var categoryStyles = map[byte]lipgloss.Style{
	'v': lipgloss.NewStyle().Foreground(ColorGray),
	'o': lipgloss.NewStyle().Foreground(ColorGray),
	's': lipgloss.NewStyle().Foreground(ColorGray),
	't': lipgloss.NewStyle().Foreground(ColorGray),
	'c': lipgloss.NewStyle().Foreground(ColorYellow),
	'b': lipgloss.NewStyle().Foreground(ColorYellow),
	'm': lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true),
	'a': lipgloss.NewStyle().Foreground(ColorCyan),
}

// CategoryStyle returns the style for the type letter of an SDP line.
func CategoryStyle(letter byte) lipgloss.Style {
	if s, ok := categoryStyles[letter]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
