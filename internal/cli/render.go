package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#0B6FA8"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6F6E69"))
	alertStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#D14D41"))
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0B6FA8"))
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#6F6E69")).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)
	return border.Render(titleStyle.Render(title))
}

// RenderAlert renders a highlighted warning line.
func RenderAlert(msg string) string {
	return alertStyle.Render("  ⚠ " + msg)
}

// RenderTable renders a bordered table with headers and rows. The first
// column is left-aligned, every other column right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if lipgloss.Width(h) > widths[i] {
			widths[i] = lipgloss.Width(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(mutedStyle.Render(left))
		for i, w := range widths {
			b.WriteString(mutedStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(mutedStyle.Render(mid))
			}
		}
		b.WriteString(mutedStyle.Render(right))
		b.WriteString("\n")
	}

	writeRow := func(cells []string, style lipgloss.Style) {
		b.WriteString(mutedStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if i == 0 {
				b.WriteString(style.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(style.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(mutedStyle.Render("│"))
			}
		}
		b.WriteString(mutedStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		writeRow(t.Headers, headerStyle)
		rule("├", "┼", "┤")
	}
	for _, row := range t.Rows {
		writeRow(row, lipgloss.NewStyle())
	}
	rule("╰", "┴", "╯")

	return b.String()
}

// RenderBarRow renders one labeled bar of a horizontal bar chart, scaled
// against the chart's maximum value.
func RenderBarRow(label string, value, maxValue float64, labelWidth, barWidth int, formatted string) string {
	barLen := 0
	if maxValue > 0 {
		barLen = int(value / maxValue * float64(barWidth))
	}
	if barLen < 1 && value > 0 {
		barLen = 1
	}
	bar := barStyle.Render(strings.Repeat("█", barLen))
	return fmt.Sprintf("  %-*s %s %s", labelWidth, label, bar, mutedStyle.Render(formatted))
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}
