package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Primary)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(12)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text)
}

// Header renders a bold title line.
func Header(title string) string {
	return headerStyle().Render(title)
}

// KV renders an aligned "label value" line.
func KV(label string, value any) string {
	return labelStyle().Render(label) + valueStyle().Render(fmt.Sprint(value))
}

// Done renders a success line for a written artifact.
func Done(format string, args ...any) string {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Success).Render("✓ ") + fmt.Sprintf(format, args...)
}

func Failed(err error) string {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Error).Bold(true).Render("✗ " + err.Error())
}

// ProgressBar renders a fixed-width bar for fraction in [0, 1].
func ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(strings.Repeat("█", filled))
	return bar + lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(strings.Repeat("░", width-filled))
}
