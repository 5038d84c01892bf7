package tui

import (
	"fmt"
	"strings"

	"lifespend/internal/catalog"
	"lifespend/internal/cli"
	"lifespend/internal/tui/components"
	"lifespend/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const editorLabelWidth = 30

func (a App) renderEditorTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	kindStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// marker(2) + label + value("24.00 h" right-aligned, 9) + gauge
	gaugeW := innerW - 2 - editorLabelWidth - 9 - 2
	if gaugeW < 10 {
		gaugeW = 10
	}

	var body strings.Builder

	renderRow := func(row int, label, value, gauge, hint string) {
		if row == a.editorCursor {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-*s", editorLabelWidth, truncStr(label, editorLabelWidth))))
		} else {
			body.WriteString("  ")
			body.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", editorLabelWidth, truncStr(label, editorLabelWidth))))
		}
		body.WriteString(valueStyle.Render(fmt.Sprintf("%8s ", value)))
		body.WriteString(gauge)
		if hint != "" {
			body.WriteString(" ")
			body.WriteString(kindStyle.Render(hint))
		}
		body.WriteString("\n")
	}

	renderRow(0,
		"Expected lifespan",
		fmt.Sprintf("%d y", a.lifespan),
		components.ValueGauge(float64(a.lifespan), catalog.MinLifespanYears, catalog.MaxLifespanYears, gaugeW),
		"")

	for i, f := range catalog.Fields() {
		hint := ""
		if f.Kind == catalog.Discrete {
			hint = "¼h steps to 1h"
		}
		renderRow(i+1,
			f.Label,
			cli.FormatHours(a.inputs[f.Key])+" h",
			components.ValueGauge(a.inputs[f.Key], fieldGaugeMin(f), fieldGaugeMax(f), gaugeW),
			hint)
	}

	body.WriteString("\n")
	body.WriteString(components.BudgetGauge(a.alloc.DailyHoursTotal, innerW-12))
	body.WriteString("\n\n")

	if a.flash != "" {
		flashStyle := lipgloss.NewStyle().Foreground(t.Green)
		if strings.HasPrefix(a.flash, "Save failed") {
			flashStyle = lipgloss.NewStyle().Foreground(t.Orange)
		}
		body.WriteString(flashStyle.Render(a.flash))
		body.WriteString("\n")
	}
	body.WriteString(labelStyle.Render("[h/l] adjust  [j/k] select  [r]eset  [s]ave"))

	return components.ContentCard("Daily Hours", body.String(), cw)
}

func fieldGaugeMin(f catalog.Field) float64 {
	if f.Kind == catalog.Discrete {
		return f.Allowed[0]
	}
	return f.Min
}

func fieldGaugeMax(f catalog.Field) float64 {
	if f.Kind == catalog.Discrete {
		return f.Allowed[len(f.Allowed)-1]
	}
	return f.Max
}
