package allocation

import (
	"math"
	"reflect"
	"testing"

	"lifespend/internal/catalog"
)

const eps = 1e-6

func TestComputeDefaultsAt77(t *testing.T) {
	a := Compute(77, catalog.DefaultHours())

	if math.Abs(a.DailyHoursTotal-24.0) > eps {
		t.Fatalf("DailyHoursTotal = %v, want 24.0", a.DailyHoursTotal)
	}
	if math.Abs(a.RemainingHours) > eps {
		t.Fatalf("RemainingHours = %v, want 0", a.RemainingHours)
	}
	if math.Abs(a.FreeYears) > eps {
		t.Fatalf("FreeYears = %v, want 0", a.FreeYears)
	}
	if a.OverBudget {
		t.Fatal("defaults flagged over budget")
	}
	if len(a.Activities) != 12 {
		t.Fatalf("len(Activities) = %d, want 12", len(a.Activities))
	}

	// Sleeping (8.5h) dominates: 8.5/24 of the allocated time.
	top := a.Activities[0]
	if top.Key != "sleep" {
		t.Fatalf("top activity = %q, want sleep", top.Key)
	}
	if math.Abs(top.PercentOfAllocated-35.416666) > 1e-4 {
		t.Fatalf("sleep share = %v, want ~35.42", top.PercentOfAllocated)
	}
	if math.Abs(top.LifetimeYears-27.270833) > 1e-4 {
		t.Fatalf("sleep lifetime years = %v, want ~27.27", top.LifetimeYears)
	}
}

func TestComputePercentagesSumTo100(t *testing.T) {
	cases := []map[string]float64{
		catalog.DefaultHours(),
		{"sleep": 0.25},
		{"sleep": 8, "work": 8, "leisure": 8},
		{"sleep": 7.75, "work": 9.25, "commute": 1, "meals": 2.5},
	}

	for i, hours := range cases {
		a := Compute(80, hours)
		var sum float64
		for _, b := range a.Activities {
			sum += b.PercentOfAllocated
		}
		if math.Abs(sum-100) > eps {
			t.Errorf("case %d: percentages sum to %v, want 100", i, sum)
		}
	}
}

func TestComputeLifetimeYearsConsistent(t *testing.T) {
	hours := map[string]float64{"sleep": 8, "work": 7.5, "leisure": 3.25}
	a := Compute(90, hours)

	var sumYears float64
	for _, b := range a.Activities {
		sumYears += b.LifetimeYears
	}
	want := a.DailyHoursTotal * 90 / 24
	if math.Abs(sumYears-want) > eps {
		t.Fatalf("sum of lifetime years = %v, want %v", sumYears, want)
	}
}

func TestComputeZeroTotal(t *testing.T) {
	a := Compute(77, map[string]float64{})

	if a.DailyHoursTotal != 0 {
		t.Fatalf("DailyHoursTotal = %v, want 0", a.DailyHoursTotal)
	}
	if math.Abs(a.RemainingHours-24) > eps {
		t.Fatalf("RemainingHours = %v, want 24", a.RemainingHours)
	}
	if math.Abs(a.FreeYears-77) > eps {
		t.Fatalf("FreeYears = %v, want 77", a.FreeYears)
	}
	if a.OverBudget {
		t.Fatal("zero total flagged over budget")
	}
	for _, b := range a.Activities {
		if b.PercentOfAllocated != 0 {
			t.Fatalf("%s share = %v, want 0", b.Key, b.PercentOfAllocated)
		}
		if b.LifetimeHours != 0 || b.LifetimeYears != 0 {
			t.Fatalf("%s has nonzero lifetime figures", b.Key)
		}
	}
}

func TestComputeOverBudget(t *testing.T) {
	a := Compute(77, map[string]float64{"sleep": 12, "work": 13})

	if !a.OverBudget {
		t.Fatal("25h total not flagged over budget")
	}
	if a.Activities != nil {
		t.Fatalf("over-budget result carries a breakdown (%d entries)", len(a.Activities))
	}
	if math.Abs(a.RemainingHours-(-1)) > eps {
		t.Fatalf("RemainingHours = %v, want -1", a.RemainingHours)
	}
	if a.FreeYears >= 0 {
		t.Fatalf("FreeYears = %v, want negative", a.FreeYears)
	}
}

func TestComputeExactly24IsNotOverBudget(t *testing.T) {
	a := Compute(77, catalog.DefaultHours())
	if a.OverBudget {
		t.Fatal("exact 24h budget flagged over budget")
	}
}

func TestComputeSortedDescendingStable(t *testing.T) {
	// commute and chores tie at 1.5; commute precedes chores in the catalog.
	hours := map[string]float64{
		"sleep":   9,
		"work":    6,
		"commute": 1.5,
		"chores":  1.5,
	}
	a := Compute(77, hours)

	for i := 1; i < len(a.Activities); i++ {
		if a.Activities[i].PercentOfAllocated > a.Activities[i-1].PercentOfAllocated+eps {
			t.Fatalf("breakdown not descending at index %d", i)
		}
	}

	commuteIdx, choresIdx := -1, -1
	for i, b := range a.Activities {
		switch b.Key {
		case "commute":
			commuteIdx = i
		case "chores":
			choresIdx = i
		}
	}
	if commuteIdx == -1 || choresIdx == -1 || commuteIdx > choresIdx {
		t.Fatalf("tie not broken by catalog order: commute=%d chores=%d", commuteIdx, choresIdx)
	}
}

func TestComputeIsPure(t *testing.T) {
	hours := map[string]float64{"sleep": 8.5, "work": 7.5, "leisure": 2}

	first := Compute(77, hours)
	second := Compute(77, hours)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different results")
	}
}

func TestComputeIgnoresUnknownKeys(t *testing.T) {
	a := Compute(77, map[string]float64{"sleep": 8, "daydreaming": 5})
	if math.Abs(a.DailyHoursTotal-8) > eps {
		t.Fatalf("DailyHoursTotal = %v, want 8 (unknown key counted)", a.DailyHoursTotal)
	}
}
