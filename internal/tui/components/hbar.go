package components

import (
	"fmt"
	"strings"

	"lifespend/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HBarEntry is one row of a horizontal bar chart.
type HBarEntry struct {
	Label      string
	Share      float64 // percentage points, 0-100
	Annotation string  // trailing note, e.g. the years equivalent
}

// HBarChart renders a horizontal bar chart: label, bar scaled against the
// largest share, the percentage, and an annotation. Entries render in the
// order given.
func HBarChart(entries []HBarEntry, width int) string {
	if len(entries) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	maxShare := 0.0
	for _, e := range entries {
		if len(e.Label) > labelW {
			labelW = len(e.Label)
		}
		if e.Share > maxShare {
			maxShare = e.Share
		}
	}

	// label + space + bar + space + "35.4%" + space + annotation
	barMax := width - labelW - 20
	if barMax < 6 {
		barMax = 6
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Cycle bar colors for visual interest - pre-compute styles once.
	barColors := []lipgloss.Color{t.Blue, t.Cyan, t.Magenta, t.Yellow, t.Green}
	barStyles := make([]lipgloss.Style, len(barColors))
	for i, c := range barColors {
		barStyles[i] = lipgloss.NewStyle().Foreground(c)
	}

	var b strings.Builder
	for i, e := range entries {
		barLen := 0
		if maxShare > 0 {
			barLen = int(e.Share / maxShare * float64(barMax))
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, e.Label)),
			barStyles[i%len(barStyles)].Render(strings.Repeat("█", barLen)),
			pctStyle.Render(fmt.Sprintf("%5.1f%%", e.Share)),
			noteStyle.Render(e.Annotation),
		)
	}
	return b.String()
}
