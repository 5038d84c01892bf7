package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lifespend/internal/catalog"
	"lifespend/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to lifespend!")
	fmt.Println()

	// 1. Lifespan
	fmt.Println("  1. How long do you expect to live?")
	fmt.Printf("     Years between %d and %d [%d]\n",
		catalog.MinLifespanYears, catalog.MaxLifespanYears, cfg.General.LifespanYears)
	fmt.Print("     > ")
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(answer)
	if answer != "" {
		years, err := strconv.Atoi(answer)
		if err != nil {
			return fmt.Errorf("invalid lifespan %q: %w", answer, err)
		}
		cfg.General.LifespanYears = catalog.ClampLifespan(years)
	}
	fmt.Println()

	// 2. Daily hours, one activity at a time
	fmt.Println("  2. Hours per day on each activity (Enter keeps the default)")
	for _, f := range catalog.Fields() {
		fmt.Printf("     %s [%.2f]\n", f.Label, cfg.Hours[f.Key])
		fmt.Print("     > ")
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return fmt.Errorf("invalid hours %q for %s: %w", answer, f.Key, err)
		}
		cfg.Hours[f.Key] = f.Clamp(v)
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `lifespend setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
