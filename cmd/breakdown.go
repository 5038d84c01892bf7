package cmd

import (
	"fmt"

	"lifespend/internal/allocation"
	"lifespend/internal/cli"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Lifetime breakdown chart and table",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	lifespan, hours, err := buildInputs()
	if err != nil {
		return err
	}

	alloc := allocation.Compute(lifespan, hours)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HOW YOU SPEND YOUR LIFE  %d years", alloc.LifespanYears)))
	fmt.Println()

	if alloc.OverBudget {
		fmt.Println(cli.RenderWarning(fmt.Sprintf(
			"Your day adds up to %.2f hours - that's %.2f more than a day holds.",
			alloc.DailyHoursTotal, -alloc.RemainingHours)))
		fmt.Println(cli.RenderWarning("Trim some activities and try again."))
		fmt.Println()
		return nil
	}

	fmt.Print(cli.RenderBreakdownChart(alloc.Activities, 76))
	fmt.Println()

	rows := make([][]string, 0, len(alloc.Activities)+2)
	for _, act := range alloc.Activities {
		rows = append(rows, []string{
			act.Label,
			cli.FormatHours(act.DailyHours) + " h",
			cli.FormatShare(act.PercentOfAllocated),
			cli.FormatLifetime(act.LifetimeYears),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Free time",
		cli.FormatHours(alloc.RemainingHours) + " h",
		"",
		cli.FormatYears(alloc.FreeYears),
	})

	table := cli.Table{
		Headers: []string{"Activity", "Daily", "Share", "Lifetime"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	fmt.Println()
	fmt.Printf("  You have %s of free time left to spend however you like.\n",
		cli.FormatYears(alloc.FreeYears))
	fmt.Println()

	return nil
}
