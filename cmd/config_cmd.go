package cmd

import (
	"fmt"

	"lifespend/internal/catalog"
	"lifespend/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [general]")
	fmt.Printf("    Lifespan: %d years\n", cfg.General.LifespanYears)
	fmt.Println()

	fmt.Println("  [hours]")
	for _, f := range catalog.Fields() {
		marker := ""
		if cfg.Hours[f.Key] != f.DefaultHours {
			marker = fmt.Sprintf("  (default %.2f)", f.DefaultHours)
		}
		fmt.Printf("    %-12s %5.2f h%s\n", f.Key, cfg.Hours[f.Key], marker)
	}
	fmt.Println()

	fmt.Println("  [appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `lifespend setup` to reconfigure.")
	return nil
}
