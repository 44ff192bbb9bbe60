package components

import (
	"fmt"
	"strings"

	"expenseai/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BarItem is one labeled value in a horizontal bar chart.
type BarItem struct {
	Label     string
	Value     float64
	Formatted string
}

// BarChart renders labeled horizontal bars scaled to the largest value.
func BarChart(items []BarItem, barWidth int) string {
	if len(items) == 0 {
		return ""
	}
	t := theme.Active

	maxVal := 0.0
	labelWidth := 0
	for _, it := range items {
		if it.Value > maxVal {
			maxVal = it.Value
		}
		if w := lipgloss.Width(it.Label); w > labelWidth {
			labelWidth = w
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	valStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		barLen := int(it.Value / maxVal * float64(barWidth))
		if barLen < 1 && it.Value > 0 {
			barLen = 1
		}
		b.WriteString(fmt.Sprintf("%-*s %s %s",
			labelWidth, it.Label,
			barStyle.Render(strings.Repeat("█", barLen)),
			valStyle.Render(it.Formatted)))
	}
	return b.String()
}
