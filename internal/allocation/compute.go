// Package allocation implements the lifetime projection calculator: one pure
// function from an input snapshot to a render-ready result.
package allocation

import (
	"sort"

	"lifespend/internal/catalog"
	"lifespend/internal/model"
)

// budgetEpsilon absorbs float noise when deciding whether a daily total
// exceeds the 24-hour budget. Quarter-hour inputs sum exactly in binary,
// but the calculator accepts arbitrary non-negative values.
const budgetEpsilon = 1e-9

// Compute derives the full lifetime allocation for one input snapshot.
// It is total: any lifespan and any non-negative hours produce a defined
// result, and identical inputs always produce identical output.
//
// Activities missing from hours count as zero; keys outside the catalog are
// ignored. The over-budget and zero-total policies follow the result type's
// contract (see model.Allocation).
func Compute(lifespanYears int, hours map[string]float64) model.Allocation {
	var total float64
	for _, f := range catalog.Fields() {
		total += hours[f.Key]
	}

	out := model.Allocation{
		LifespanYears:   lifespanYears,
		DailyHoursTotal: total,
		RemainingHours:  catalog.HoursPerDay - total,
	}
	out.FreeYears = out.RemainingHours * float64(lifespanYears) / catalog.HoursPerDay

	if total > catalog.HoursPerDay+budgetEpsilon {
		out.OverBudget = true
		return out
	}

	// Percentages are shares of the allocated total, so the lifespan factor
	// cancels; lifetime figures carry it.
	lifetimeTotal := total * catalog.DaysPerYear * float64(lifespanYears)

	breakdown := make([]model.Breakdown, 0, 12)
	for _, f := range catalog.Fields() {
		h := hours[f.Key]
		lifetimeHours := h * catalog.DaysPerYear * float64(lifespanYears)

		b := model.Breakdown{
			Key:           f.Key,
			Label:         f.Label,
			DailyHours:    h,
			LifetimeHours: lifetimeHours,
			LifetimeYears: lifetimeHours / (catalog.HoursPerDay * catalog.DaysPerYear),
		}
		// Guard the zero-total case: everything stays at 0% instead of NaN.
		if total > 0 {
			b.PercentOfAllocated = lifetimeHours / lifetimeTotal * 100
		}
		breakdown = append(breakdown, b)
	}

	// Descending by share; stable so ties keep catalog order.
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].PercentOfAllocated > breakdown[j].PercentOfAllocated
	})

	out.Activities = breakdown
	return out
}

// ComputeInputs is the snapshot-struct flavor of Compute.
func ComputeInputs(in model.Inputs) model.Allocation {
	return Compute(in.LifespanYears, in.Hours)
}
