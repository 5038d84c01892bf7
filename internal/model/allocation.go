// Package model holds the plain data types passed between the calculator
// and the presentation layers.
package model

// Inputs is one snapshot of user-supplied values. It is rebuilt from scratch
// on every interaction; nothing holds onto a previous snapshot.
type Inputs struct {
	LifespanYears int
	Hours         map[string]float64 // activity key -> daily hours
}

// Breakdown holds the lifetime projection for a single activity.
type Breakdown struct {
	Key        string
	Label      string
	DailyHours float64

	LifetimeHours      float64
	LifetimeYears      float64
	PercentOfAllocated float64
}

// Allocation is the derived, read-only result of one computation.
//
// When OverBudget is set (daily total above 24h) Activities is nil and
// renderers show only the total/remaining figures; the breakdown, chart,
// and free-time sections are suppressed.
type Allocation struct {
	LifespanYears   int
	DailyHoursTotal float64
	RemainingHours  float64 // 24 - DailyHoursTotal, negative when over budget
	OverBudget      bool

	// Activities is sorted by PercentOfAllocated descending; ties keep
	// catalog order.
	Activities []Breakdown

	// FreeYears is the unallocated portion of the day extrapolated across
	// the lifespan. Negative only when OverBudget.
	FreeYears float64
}
