package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// renderTable lays out rows under headers, sizing every column to its
// widest cell. Widths are measured with lipgloss.Width so emoji markers
// don't skew the layout.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		fmt.Fprintf(&b, "%-*s  ", widths[i], h)
	}
	b.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w + 2
	}
	b.WriteString(strings.Repeat("-", total))
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			pad := 0
			if i < len(widths) {
				pad = widths[i] - lipgloss.Width(cell)
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad+2))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// limitOrUnlimited renders a byte/message limit, treating zero and below
// as unlimited.
func limitOrUnlimited(limit int) string {
	if limit > 0 {
		return fmt.Sprintf("%d", limit)
	}
	return "unlimited"
}

// limitOrInfinity is the compact variant used in the clients table.
func limitOrInfinity(limit int) string {
	if limit > 0 {
		return fmt.Sprintf("%d", limit)
	}
	return "∞"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
