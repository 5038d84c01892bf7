package cli

import (
	"fmt"
	"strings"

	"lifespend/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	barStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	annotationStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderWarning renders a warning line for over-budget input.
func RenderWarning(text string) string {
	return "  " + warnStyle.Render(text)
}

// RenderTable renders a bordered table with headers and rows.
// A row of ["---"] renders as a separator line.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	// Measure in display cells, not bytes: table cells can carry
	// multibyte glyphs like the quarter-hour fractions.
	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
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
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderBreakdownChart renders the lifetime allocation as a horizontal bar
// chart: one row per activity, bar scaled to its share of allocated time,
// annotated with the years equivalent. Activities must already be sorted.
func RenderBreakdownChart(activities []model.Breakdown, width int) string {
	if len(activities) == 0 {
		return ""
	}

	labelW := 0
	for _, b := range activities {
		if len(b.Label) > labelW {
			labelW = len(b.Label)
		}
	}

	maxShare := activities[0].PercentOfAllocated
	for _, b := range activities[1:] {
		if b.PercentOfAllocated > maxShare {
			maxShare = b.PercentOfAllocated
		}
	}

	// label + space + bar + space + "35.4%" + space + annotation
	barMax := width - labelW - 22
	if barMax < 8 {
		barMax = 8
	}

	var out strings.Builder
	for _, b := range activities {
		barLen := 0
		if maxShare > 0 {
			barLen = int(b.PercentOfAllocated / maxShare * float64(barMax))
		}
		fmt.Fprintf(&out, "  %s %s %s %s\n",
			valueStyle.Render(fmt.Sprintf("%-*s", labelW, b.Label)),
			barStyle.Render(strings.Repeat("█", barLen)),
			dimStyle.Render(fmt.Sprintf("%5s", FormatShare(b.PercentOfAllocated))),
			annotationStyle.Render(FormatLifetime(b.LifetimeYears)),
		)
	}
	return out.String()
}
