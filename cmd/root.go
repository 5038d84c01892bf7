package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"lifespend/internal/catalog"
	"lifespend/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagLifespan int
	flagHours    []string
)

var rootCmd = &cobra.Command{
	Use:   "lifespend",
	Short: "How are you spending your life?",
	Long: "Turn your daily time estimates into lifetime projections:\n" +
		"see how many years of your life go to sleep, work, chores, and the rest.",
	RunE: runBreakdown,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagLifespan, "lifespan", "L", 0,
		fmt.Sprintf("Expected lifespan in years (%d-%d, overrides config)",
			catalog.MinLifespanYears, catalog.MaxLifespanYears))
	rootCmd.PersistentFlags().StringArrayVar(&flagHours, "hours", nil,
		"Override an activity's daily hours as key=value (repeatable, e.g. --hours sleep=9)")
}

// buildInputs assembles the lifespan and per-activity hours for a run:
// saved config first, then any flag overrides, everything clamped to the
// catalog's valid values.
func buildInputs() (int, map[string]float64, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, nil, err
	}

	lifespan := cfg.General.LifespanYears
	if flagLifespan != 0 {
		lifespan = catalog.ClampLifespan(flagLifespan)
	}

	hours := make(map[string]float64, len(cfg.Hours))
	for k, v := range cfg.Hours {
		hours[k] = v
	}

	for _, override := range flagHours {
		key, valStr, ok := strings.Cut(override, "=")
		if !ok {
			return 0, nil, fmt.Errorf("invalid --hours %q: want key=value", override)
		}
		key = strings.TrimSpace(key)

		f, found := catalog.Lookup(key)
		if !found {
			return 0, nil, fmt.Errorf("unknown activity %q (valid: %s)", key, activityKeys())
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(valStr), 64)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid --hours %q: %w", override, err)
		}
		hours[key] = f.Clamp(v)
	}

	return lifespan, hours, nil
}

func activityKeys() string {
	fields := catalog.Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return strings.Join(keys, ", ")
}
