package components

import (
	"strings"
	"testing"

	"lifespend/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{7, 3},
		{140, 4},
	}
	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d): got %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d): widths sum to %d", tc.total, tc.n, sum)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	cards := []struct{ Label, Value, Note string }{
		{"Daily Total", "24.00 h", "of 24 h"},
		{"Remaining", "0.00 h", "in your day"},
		{"Free Time", "9.6 years", "over your lifespan"},
		{"Lifespan", "77 years", ""},
	}
	row := MetricCardRow(cards, 120)

	if got := lipgloss.Width(row); got != 120 {
		t.Errorf("MetricCardRow width = %d, want 120", got)
	}
}

func TestHBarChartScalesToLargestShare(t *testing.T) {
	theme.SetActive("flexoki-dark")

	entries := []HBarEntry{
		{Label: "Sleeping", Share: 50, Annotation: "27.3 years"},
		{Label: "Working", Share: 25, Annotation: "13.6 years"},
	}
	out := HBarChart(entries, 80)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(entries) {
		t.Fatalf("got %d chart rows, want %d", len(lines), len(entries))
	}

	topBar := strings.Count(lines[0], "█")
	halfBar := strings.Count(lines[1], "█")
	if topBar == 0 {
		t.Fatal("largest entry rendered an empty bar")
	}
	if halfBar*2 < topBar-1 || halfBar*2 > topBar+1 {
		t.Errorf("half share bar = %d blocks vs top %d, want roughly half", halfBar, topBar)
	}
}

func TestHBarChartEmpty(t *testing.T) {
	if out := HBarChart(nil, 80); out != "" {
		t.Errorf("empty chart should render nothing, got %q", out)
	}
}

func TestTabIdxByKey(t *testing.T) {
	cases := []struct {
		key  rune
		want int
	}{
		{'e', 0},
		{'b', 1},
		{'x', 2},
		{'z', -1},
	}
	for _, tc := range cases {
		if got := TabIdxByKey(tc.key); got != tc.want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tc.key, got, tc.want)
		}
	}
}

func TestRenderTabBarShowsAllTabs(t *testing.T) {
	theme.SetActive("flexoki-dark")

	bar := RenderTabBar(0)
	for _, tab := range Tabs {
		if !strings.Contains(bar, string(tab.Name[0])) {
			t.Errorf("tab bar missing tab %q", tab.Name)
		}
	}
}

func TestColorForBudget(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active

	cases := []struct {
		frac float64
		want string
	}{
		{0.5, string(th.Green)},
		{0.8, string(th.Yellow)},
		{0.97, string(th.Orange)},
		{1.0, string(th.Orange)},
		{1.05, string(th.Red)},
	}
	for _, tc := range cases {
		if got := ColorForBudget(tc.frac); got != tc.want {
			t.Errorf("ColorForBudget(%.2f) = %s, want %s", tc.frac, got, tc.want)
		}
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(100); got != 96 {
		t.Errorf("CardInnerWidth(100) = %d, want 96", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want floor of 10", got)
	}
}
