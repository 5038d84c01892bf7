// Package cmd implements the lifespend CLI commands.
package cmd

import (
	"fmt"

	"lifespend/internal/allocation"
	"lifespend/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Daily totals and the headline free-time figure",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	lifespan, hours, err := buildInputs()
	if err != nil {
		return err
	}

	alloc := allocation.Compute(lifespan, hours)

	fmt.Println()
	fmt.Println(cli.RenderTitle("YOUR DAY AT A GLANCE"))
	fmt.Println()

	rows := [][]string{
		{"Lifespan", fmt.Sprintf("%d years", alloc.LifespanYears)},
		{"Allocated", cli.FormatHours(alloc.DailyHoursTotal) + " h/day"},
		{"Remaining", cli.FormatHours(alloc.RemainingHours) + " h/day"},
	}

	if alloc.OverBudget {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Status", "over budget"})
	} else {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Free time", cli.FormatYears(alloc.FreeYears)})
	}

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	if alloc.OverBudget {
		fmt.Println()
		fmt.Println(cli.RenderWarning(fmt.Sprintf(
			"Your day adds up to %.2f hours - trim %.2f to fit a real day.",
			alloc.DailyHoursTotal, -alloc.RemainingHours)))
	}
	fmt.Println()

	return nil
}
