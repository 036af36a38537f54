// Package cli renders catsync's human-readable terminal output with lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	AccentColor  = lipgloss.Color("#FF6B6B")
	SuccessColor = lipgloss.Color("#4ECDC4")
	WarningColor = lipgloss.Color("#FFE66D")
	ErrorColor   = lipgloss.Color("#FF6B6B")
	InfoColor    = lipgloss.Color("#95E1D3")
	SubtleColor  = lipgloss.Color("#666666")
	HeaderColor  = lipgloss.Color("86")
)

var (
	// TitleStyle renders report and table titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	// HeaderStyle renders table column headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(HeaderColor)
	// UpdatedStyle marks catalog entries that changed rows.
	UpdatedStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	// SubtleStyle marks unchanged entries and empty cells.
	SubtleStyle = lipgloss.NewStyle().Foreground(SubtleColor)

	successStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	warningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	infoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
)

// Icons prefixed to status lines.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	SyncIcon    = "🔁"
)

func withIcon(style lipgloss.Style, icon, message string) string {
	return style.Render(icon + " " + message)
}

// FormatSuccess formats a success line.
func FormatSuccess(message string) string { return withIcon(successStyle, SuccessIcon, message) }

// FormatError formats an error line.
func FormatError(message string) string { return withIcon(errorStyle, ErrorIcon, message) }

// FormatWarning formats a warning line.
func FormatWarning(message string) string { return withIcon(warningStyle, WarningIcon, message) }

// FormatInfo formats an informational line.
func FormatInfo(message string) string { return withIcon(infoStyle, InfoIcon, message) }

// FormatTitle formats a section title.
func FormatTitle(title string) string { return withIcon(TitleStyle, SyncIcon, title) }
