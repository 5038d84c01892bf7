package tui

import (
	"fmt"
	"strings"

	"lifespend/internal/cli"
	"lifespend/internal/tui/components"
	"lifespend/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBreakdownTab(cw int) string {
	alloc := a.alloc
	var b strings.Builder

	// Row 1: Metric cards
	freeNote := "over your lifespan"
	freeValue := cli.FormatYears(alloc.FreeYears)
	if alloc.OverBudget {
		freeValue = "—"
		freeNote = "day over-allocated"
	}

	cards := []struct{ Label, Value, Note string }{
		{"Daily Total", cli.FormatHours(alloc.DailyHoursTotal) + " h", "of 24 h"},
		{"Remaining", cli.FormatHours(alloc.RemainingHours) + " h", "in your day"},
		{"Free Time", freeValue, freeNote},
		{"Lifespan", fmt.Sprintf("%d years", alloc.LifespanYears), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Over-budget: totals only, no chart/table/free-time sections.
	if alloc.OverBudget {
		t := theme.Active
		warnStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

		body := warnStyle.Render(fmt.Sprintf("Your day adds up to %.2f hours - that's %.2f more than a day holds.",
			alloc.DailyHoursTotal, -alloc.RemainingHours)) +
			"\n\n" +
			hintStyle.Render("Trim some activities on the Editor tab to see your life breakdown.")
		b.WriteString(components.ContentCard("Over Budget", body, cw))
		return b.String()
	}

	// Row 2: Horizontal percentage chart annotated with years
	entries := make([]components.HBarEntry, len(alloc.Activities))
	for i, act := range alloc.Activities {
		entries[i] = components.HBarEntry{
			Label:      act.Label,
			Share:      act.PercentOfAllocated,
			Annotation: cli.FormatLifetime(act.LifetimeYears),
		}
	}
	chart := components.HBarChart(entries, components.CardInnerWidth(cw))
	b.WriteString(components.ContentCard("Your Life Breakdown", chart, cw))
	b.WriteString("\n")

	// Row 3: Detail table
	b.WriteString(components.ContentCard("Detailed Breakdown", a.renderDetailTable(cw), cw))

	return b.String()
}

func (a App) renderDetailTable(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	shareStyle := lipgloss.NewStyle().Foreground(t.Cyan)
	timeStyle := lipgloss.NewStyle().Foreground(t.Green)

	// Activity | Daily | Share | Lifetime
	fixedCols := 8 + 7 + 12
	nameW := innerW - fixedCols - 3
	if nameW < 14 {
		nameW = 14
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %8s %7s %12s", nameW, "Activity", "Daily", "Share", "Lifetime")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	for _, act := range a.alloc.Activities {
		body.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(act.Label, nameW))))
		body.WriteString(rowStyle.Render(fmt.Sprintf(" %6s h", cli.FormatHours(act.DailyHours))))
		body.WriteString(shareStyle.Render(fmt.Sprintf(" %7s", cli.FormatShare(act.PercentOfAllocated))))
		body.WriteString(timeStyle.Render(fmt.Sprintf(" %12s", cli.FormatLifetime(act.LifetimeYears))))
		body.WriteString("\n")
	}

	return body.String()
}
