package tui

import (
	"fmt"

	"lifespend/internal/catalog"
	"lifespend/internal/config"
	"lifespend/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run wizard answers.
type setupValues struct {
	lifespan int
	theme    string
}

func newSetupForm(vals *setupValues) *huh.Form {
	// 5-year grid plus the 77-year US average default.
	lifespanOpts := make([]huh.Option[int], 0, 12)
	for y := catalog.MinLifespanYears; y <= catalog.MaxLifespanYears; y += 5 {
		if y > catalog.DefaultLifespanYears && y-5 < catalog.DefaultLifespanYears {
			lifespanOpts = append(lifespanOpts,
				huh.NewOption(fmt.Sprintf("%d years (US average)", catalog.DefaultLifespanYears), catalog.DefaultLifespanYears))
		}
		lifespanOpts = append(lifespanOpts, huh.NewOption(fmt.Sprintf("%d years", y), y))
	}

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOpts[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How long do you expect to live?").
				Description("Used to project daily hours across your lifetime.").
				Options(lifespanOpts...).
				Value(&vals.lifespan),
			huh.NewSelect[string]().
				Title("Pick a theme").
				Options(themeOpts...).
				Value(&vals.theme),
		).Title("Welcome to lifespend"),
	)
}

// applySetup commits the wizard answers: updates the app state, activates
// the chosen theme, and writes the initial config file.
func (a *App) applySetup() {
	a.lifespan = catalog.ClampLifespan(a.setupVals.lifespan)
	theme.SetActive(a.setupVals.theme)
	a.recompute()

	cfg := config.DefaultConfig()
	cfg.General.LifespanYears = a.lifespan
	cfg.Appearance.Theme = a.setupVals.theme
	cfg.Hours = make(map[string]float64, len(a.inputs))
	for k, v := range a.inputs {
		cfg.Hours[k] = v
	}
	if err := config.Save(cfg); err != nil {
		a.flash = fmt.Sprintf("Save failed: %s", err)
		return
	}
	a.flash = "Saved to " + config.Path()
}
