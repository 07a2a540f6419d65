package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dgray/goalsmith/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ConfidenceColor maps a [0,1] confidence onto a style matching its band:
// green for high, yellow for medium, red for low.
func ConfidenceColor(confidence float64) lipgloss.Style {
	switch domain.ConfidenceBand(confidence) {
	case "high":
		return StyleGreen
	case "medium":
		return StyleYellow
	default:
		return StyleRed
	}
}

// ConfidenceLabel returns a colored band label such as "HIGH (0.82)".
func ConfidenceLabel(confidence float64) string {
	band := strings.ToUpper(domain.ConfidenceBand(confidence))
	return ConfidenceColor(confidence).Render(fmt.Sprintf("%s (%.2f)", band, confidence))
}

// SeverityColor returns the style for a constraint severity.
func SeverityColor(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityHigh:
		return StyleRed
	case domain.SeverityMedium:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// UrgencyBadge returns a colored urgency indicator such as "▲ HIGH".
func UrgencyBadge(u domain.Urgency) string {
	switch u {
	case domain.UrgencyHigh:
		return StyleRed.Render("▲ HIGH")
	case domain.UrgencyMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.UrgencyLow:
		return StyleGreen.Render("▽ LOW")
	default:
		return StyleDim.Render(string(u))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
