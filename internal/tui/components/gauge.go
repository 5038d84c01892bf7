package components

import (
	"fmt"

	"lifespend/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForBudget returns green/yellow/orange/red for a fraction of the
// 24-hour day already allocated.
func ColorForBudget(frac float64) string {
	t := theme.Active
	switch {
	case frac > 1:
		return string(t.Red)
	case frac >= 0.95:
		return string(t.Orange)
	case frac >= 0.75:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// ValueGauge renders a labeled slider-style gauge for one editor field:
// the field value as a filled bar within [min, max].
func ValueGauge(value, min, max float64, barWidth int) string {
	t := theme.Active

	frac := 0.0
	if max > min {
		frac = (value - min) / (max - min)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return bar.ViewAs(frac)
}

// BudgetGauge renders the daily 24-hour budget as a colored bar with the
// allocated total alongside.
func BudgetGauge(totalHours float64, barWidth int) string {
	t := theme.Active

	frac := totalHours / 24
	clamped := frac
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 1 {
		clamped = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForBudget(frac)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	numStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForBudget(frac))).Bold(true)

	return bar.ViewAs(clamped) + " " + numStyle.Render(fmt.Sprintf("%.2f/24 h", totalHours))
}
