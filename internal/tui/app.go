// Package tui provides the interactive Bubble Tea dashboard for lifespend.
package tui

import (
	"fmt"
	"strings"

	"lifespend/internal/allocation"
	"lifespend/internal/catalog"
	"lifespend/internal/config"
	"lifespend/internal/model"
	"lifespend/internal/tui/components"
	"lifespend/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. Every input change rebuilds the input
// snapshot and recomputes the allocation from scratch; nothing is cached.
type App struct {
	// Current input snapshot
	inputs   map[string]float64
	lifespan int

	// Derived, recomputed on every change
	alloc model.Allocation

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string // transient editor note (saved / reset)

	// Per-tab state
	editorCursor int
	settings     settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// editor row 0 is the lifespan; activity fields follow in catalog order.
func editorRowCount() int {
	return 1 + len(catalog.Fields())
}

// loadConfigOrDefault loads config, returning defaults on error so the TUI
// can always start even if the file is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model seeded from the given config.
func NewApp(cfg config.Config) App {
	inputs := make(map[string]float64, len(cfg.Hours))
	for k, v := range cfg.Hours {
		inputs[k] = v
	}

	a := App{
		inputs:    inputs,
		lifespan:  cfg.General.LifespanYears,
		needSetup: !config.Exists(),
	}
	if a.needSetup {
		a.setupVals = setupValues{lifespan: a.lifespan, theme: theme.Active.Name}
		a.setupForm = newSetupForm(&a.setupVals)
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

func (a *App) recompute() {
	a.alloc = allocation.Compute(a.lifespan, a.inputs)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == 2 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Editor tab keybindings
		if a.activeTab == 0 {
			switch key {
			case "j", "down":
				if a.editorCursor < editorRowCount()-1 {
					a.editorCursor++
				}
				return a, nil
			case "k", "up":
				if a.editorCursor > 0 {
					a.editorCursor--
				}
				return a, nil
			case "g":
				a.editorCursor = 0
				return a, nil
			case "G":
				a.editorCursor = editorRowCount() - 1
				return a, nil
			case "h", "left":
				a.adjust(-1)
				return a, nil
			case "l", "right":
				a.adjust(+1)
				return a, nil
			case "r":
				a.resetToDefaults()
				return a, nil
			case "s":
				a.saveInputs()
				return a, nil
			}
		}

		// Settings tab navigation (non-editing mode)
		if a.activeTab == 2 {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// adjust moves the selected editor field by one step in the given direction,
// then recomputes the allocation from the fresh snapshot.
func (a *App) adjust(dir int) {
	a.flash = ""

	if a.editorCursor == 0 {
		a.lifespan = catalog.ClampLifespan(a.lifespan + dir)
		a.recompute()
		return
	}

	f := catalog.Fields()[a.editorCursor-1]
	v := a.inputs[f.Key]

	if f.Kind == catalog.Discrete {
		idx := 0
		for i, allowed := range f.Allowed {
			if allowed == v {
				idx = i
				break
			}
		}
		idx += dir
		if idx < 0 {
			idx = 0
		}
		if idx >= len(f.Allowed) {
			idx = len(f.Allowed) - 1
		}
		a.inputs[f.Key] = f.Allowed[idx]
	} else {
		a.inputs[f.Key] = f.Clamp(v + float64(dir)*f.Step)
	}

	a.recompute()
}

// resetToDefaults restores the working snapshot to catalog defaults.
// The config file is untouched until the user saves.
func (a *App) resetToDefaults() {
	a.inputs = catalog.DefaultHours()
	a.lifespan = catalog.DefaultLifespanYears
	a.recompute()
	a.flash = "Reset to defaults"
}

func (a *App) saveInputs() {
	cfg := loadConfigOrDefault()
	cfg.General.LifespanYears = a.lifespan
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

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  lifespend needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"e b x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Select field"},
		{"g G", "First / Last field"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Editor"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"h l", "Decrease / Increase value"},
		{"r", "Reset to defaults"},
		{"s", "Save values to config"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab)
	statusBar := components.RenderStatusBar(w, a.alloc.DailyHoursTotal, a.alloc.RemainingHours, a.alloc.OverBudget)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderEditorTab(cw)
	case 1:
		content = a.renderBreakdownTab(cw)
	case 2:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
