package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette used across fngen output.
const (
	ColorGreen  = "#2FBF71"
	ColorRed    = "#FF0000"
	ColorYellow = "#E5C07B"
	ColorCyan   = "#00BFFF"
	ColorGray   = "#808080"
	ColorBorder = "#5F5FD7"
)

// StyleSet groups the lipgloss styles used by the console reporter.
type StyleSet struct {
	Title   lipgloss.Style
	Step    lipgloss.Style
	Goal    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Rule    lipgloss.Style
}

// NewStyles returns the fngen style set. With color disabled every style renders plain text.
func NewStyles(color bool) *StyleSet {
	if !color {
		plain := lipgloss.NewStyle()
		return &StyleSet{
			Title:   plain,
			Step:    plain,
			Goal:    plain,
			Success: plain,
			Warning: plain,
			Error:   plain,
			Muted:   plain,
			Rule:    plain,
		}
	}

	return &StyleSet{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorCyan)),
		Step:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBorder)),
		Goal:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(ColorGray)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)),
	}
}
