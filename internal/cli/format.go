// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
)

// FormatHours formats a daily-hours value with two decimals.
// e.g., 8.5 -> "8.50"
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// FormatShare formats a percentage (in points, 0-100) with one decimal.
func FormatShare(points float64) string {
	return fmt.Sprintf("%.1f%%", points)
}

// FormatLifetime formats a span of years for display: one decimal when at
// least a year, otherwise whole months (floored).
// e.g., 27.27 -> "27.3 years", 0.8 -> "9 months"
func FormatLifetime(years float64) string {
	if years >= 1 {
		return fmt.Sprintf("%.1f years", years)
	}
	months := int(math.Floor(years * 12))
	if months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", months)
}

// FormatYears formats a span of years with one decimal, without the
// months fallback. The free-time summary always reads in years, even
// below one.
func FormatYears(years float64) string {
	return fmt.Sprintf("%.1f years", years)
}

// FormatYearsShort is the compact chart-annotation form of FormatLifetime.
// e.g., 27.27 -> "27.3y", 0.8 -> "9mo"
func FormatYearsShort(years float64) string {
	if years >= 1 {
		return fmt.Sprintf("%.1fy", years)
	}
	return fmt.Sprintf("%dmo", int(math.Floor(years*12)))
}
