// Package catalog defines the fixed set of daily activities, their default
// hours, and how each value is collected. Defaults follow the American Time
// Use Survey (ATUS) national averages and sum to exactly 24 hours.
package catalog

import "math"

// Time-scale constants shared by the allocation math.
const (
	HoursPerDay = 24.0
	DaysPerYear = 365.0
)

// Lifespan input bounds.
const (
	DefaultLifespanYears = 77
	MinLifespanYears     = 50
	MaxLifespanYears     = 100
)

// Kind discriminates how a field's value is collected by an input layer.
type Kind int

const (
	// Continuous fields slide freely within [Min, Max] in Step increments.
	Continuous Kind = iota
	// Discrete fields take one of a small fixed set of values.
	Discrete
)

func (k Kind) String() string {
	if k == Discrete {
		return "discrete"
	}
	return "continuous"
}

// Field describes one activity: identity, default, and input constraints.
type Field struct {
	Key          string
	Label        string
	DefaultHours float64

	Kind    Kind
	Min     float64   // Continuous
	Max     float64   // Continuous
	Step    float64   // Continuous
	Allowed []float64 // Discrete, ascending
}

// smallValueSet is the quarter-hour range offered for low-commitment
// categories.
var smallValueSet = []float64{0, 0.25, 0.5, 0.75, 1.0}

func slider(key, label string, def float64) Field {
	return Field{
		Key: key, Label: label, DefaultHours: def,
		Kind: Continuous, Min: 0, Max: HoursPerDay, Step: 0.25,
	}
}

func dropdown(key, label string, def float64) Field {
	return Field{
		Key: key, Label: label, DefaultHours: def,
		Kind: Discrete, Allowed: smallValueSet,
	}
}

// fields is the catalog in insertion order. Never mutated after init;
// accessors hand out copies.
var fields = []Field{
	slider("sleep", "Sleeping", 8.5),
	slider("work", "Working", 7.5),
	slider("commute", "Commuting", 0.5),
	slider("chores", "Household Chores", 1.5),
	slider("meals", "Eating and Drinking", 1.5),
	slider("leisure", "Leisure", 2.25),
	slider("free_self", "Free SELF Time", 1.0),
	slider("care_others", "Caring for Others", 0.25),
	dropdown("education", "Education", 0.25),
	dropdown("religion", "Religious and Civic Activities", 0.25),
	dropdown("shopping", "Shopping/Errands", 0.25),
	dropdown("misc", "Miscellaneous Activities", 0.25),
}

// Fields returns the activity catalog in insertion order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the field for key, if it exists.
func Lookup(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// DefaultHours returns a fresh key -> default-hours map. Callers own the map.
func DefaultHours() map[string]float64 {
	out := make(map[string]float64, len(fields))
	for _, f := range fields {
		out[f.Key] = f.DefaultHours
	}
	return out
}

// Clamp snaps v onto the field's valid values: nearest allowed entry for
// discrete fields, quantized to Step and clamped to [Min, Max] otherwise.
// NaN and negative inputs fall back to zero.
func (f Field) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	if f.Kind == Discrete {
		best := f.Allowed[0]
		for _, a := range f.Allowed[1:] {
			if math.Abs(v-a) < math.Abs(v-best) {
				best = a
			}
		}
		return best
	}

	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	if f.Step > 0 {
		v = math.Round(v/f.Step) * f.Step
	}
	return v
}

// ClampLifespan clamps a lifespan to the supported [50, 100] range.
func ClampLifespan(years int) int {
	if years < MinLifespanYears {
		return MinLifespanYears
	}
	if years > MaxLifespanYears {
		return MaxLifespanYears
	}
	return years
}
