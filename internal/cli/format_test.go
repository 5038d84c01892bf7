package cli

import (
	"strings"
	"testing"

	"lifespend/internal/allocation"
	"lifespend/internal/catalog"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatLifetime(t *testing.T) {
	cases := []struct {
		years float64
		want  string
	}{
		{27.27, "27.3 years"},
		{1.0, "1.0 years"},
		{0.99, "11 months"},
		{0.8, "9 months"},
		{0.1, "1 month"},
		{0.0, "0 months"},
	}
	for _, tc := range cases {
		if got := FormatLifetime(tc.years); got != tc.want {
			t.Errorf("FormatLifetime(%v) = %q, want %q", tc.years, got, tc.want)
		}
	}
}

func TestFormatShare(t *testing.T) {
	if got := FormatShare(35.41666); got != "35.4%" {
		t.Fatalf("FormatShare = %q, want 35.4%%", got)
	}
	if got := FormatShare(0); got != "0.0%" {
		t.Fatalf("FormatShare(0) = %q, want 0.0%%", got)
	}
}

func TestFormatHours(t *testing.T) {
	if got := FormatHours(8.5); got != "8.50" {
		t.Fatalf("FormatHours(8.5) = %q", got)
	}
}

func TestRenderBreakdownChartRowsAndOrder(t *testing.T) {
	a := allocation.Compute(77, catalog.DefaultHours())

	chart := RenderBreakdownChart(a.Activities, 100)
	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	if len(lines) != len(a.Activities) {
		t.Fatalf("chart has %d lines, want %d", len(lines), len(a.Activities))
	}

	// The dominant activity comes first and carries the longest bar.
	if !strings.Contains(lines[0], "Sleeping") {
		t.Fatalf("first chart row = %q, want Sleeping", lines[0])
	}
	if !strings.Contains(lines[0], "27.3 years") {
		t.Fatalf("first chart row missing years annotation: %q", lines[0])
	}
	if strings.Count(lines[0], "█") <= strings.Count(lines[len(lines)-1], "█") {
		t.Fatal("top activity bar is not the longest")
	}
}

func TestRenderTableSeparatorRows(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Daily Total", "24.00 h"},
			{"---"},
			{"Free Time", "0.0 years"},
		},
	})
	if !strings.Contains(out, "Daily Total") || !strings.Contains(out, "Free Time") {
		t.Fatalf("table output missing rows:\n%s", out)
	}
	if strings.Contains(out, "---") {
		t.Fatal("separator row rendered literally")
	}
}

func TestRenderTableMultibyteCellsAlign(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Key", "Input"},
		Rows: [][]string{
			{"shopping", "0, ¼, ½, ¾ or 1 h"},
			{"sleep", "0-24 h in 0.25 h steps"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if got := lipgloss.Width(line); got != want {
			t.Errorf("line %d width = %d, want %d:\n%s", i, got, want, out)
		}
	}
}
