package components

import (
	"fmt"
	"strings"

	"lifespend/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, the
// running daily budget on the right. The budget flips to the warning color
// when the day is over-allocated.
func RenderStatusBar(width int, total, remaining float64, overBudget bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [?]help  [q]uit"

	var right string
	if overBudget {
		warn := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		right = warn.Render(fmt.Sprintf("%.2f h/day · %.2f h over budget ", total, -remaining))
	} else {
		right = fmt.Sprintf("%.2f h/day · %.2f h remaining ", total, remaining)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
