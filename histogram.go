package qec

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// histogramWidth is the bar length of the largest bucket.
const histogramWidth = 40

var (
	histKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	histBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	histCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

/*
RenderHistogram draws a Counts table as a horizontal bar chart, one row per
outcome in ascending key order. Plain mode skips all styling so the output
can go to logs or tests untouched.
*/
func RenderHistogram(counts Counts, plain bool) string {
	total := counts.Total()
	if total == 0 {
		return "(no shots)\n"
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	var b strings.Builder
	for _, key := range counts.Keys() {
		n := counts[key]
		width := n * histogramWidth / max
		if n > 0 && width == 0 {
			width = 1
		}

		bar := strings.Repeat("█", width)
		// Pad outside the styles so ANSI escapes never skew the columns.
		pad := strings.Repeat(" ", histogramWidth-width)
		tally := fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(total))

		if plain {
			fmt.Fprintf(&b, "%s %s%s %s\n", key, bar, pad, tally)
			continue
		}
		fmt.Fprintf(&b, "%s %s%s %s\n",
			histKeyStyle.Render(key),
			histBarStyle.Render(bar),
			pad,
			histCountStyle.Render(tally),
		)
	}
	return b.String()
}
