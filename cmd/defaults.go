package cmd

import (
	"fmt"

	"lifespend/internal/catalog"
	"lifespend/internal/cli"

	"github.com/spf13/cobra"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show the built-in activity catalog and its default hours",
	RunE:  runDefaults,
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}

func runDefaults(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("DEFAULT DAILY HOURS"))
	fmt.Println()

	total := 0.0
	rows := make([][]string, 0, len(catalog.Fields())+2)
	for _, f := range catalog.Fields() {
		input := fmt.Sprintf("0-24 h in %.2g h steps", f.Step)
		if f.Kind == catalog.Discrete {
			input = "0, ¼, ½, ¾ or 1 h"
		}
		rows = append(rows, []string{
			f.Key,
			f.Label,
			cli.FormatHours(f.DefaultHours) + " h",
			input,
		})
		total += f.DefaultHours
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total", cli.FormatHours(total) + " h", ""})

	table := cli.Table{
		Headers: []string{"Key", "Activity", "Default", "Input"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	fmt.Println()
	fmt.Printf("  Defaults follow ATUS national averages (bls.gov/tus).\n")
	fmt.Printf("  Default lifespan: %d years (US average).\n", catalog.DefaultLifespanYears)
	fmt.Println()

	return nil
}
