package config

import (
	"math"
	"os"
	"testing"

	"lifespend/internal/catalog"
)

// withTempConfigDir points XDG_CONFIG_HOME at a scratch dir for the test.
func withTempConfigDir(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.LifespanYears != catalog.DefaultLifespanYears {
		t.Fatalf("lifespan = %d, want %d", cfg.General.LifespanYears, catalog.DefaultLifespanYears)
	}
	if len(cfg.Hours) != 12 {
		t.Fatalf("hours has %d entries, want 12", len(cfg.Hours))
	}
	if Exists() {
		t.Fatal("Exists() = true with no file on disk")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.LifespanYears = 85
	cfg.Hours["sleep"] = 7.25
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.LifespanYears != 85 {
		t.Fatalf("lifespan = %d, want 85", loaded.General.LifespanYears)
	}
	if math.Abs(loaded.Hours["sleep"]-7.25) > 1e-9 {
		t.Fatalf("sleep = %v, want 7.25", loaded.Hours["sleep"])
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Fatalf("theme = %q, want terminal", loaded.Appearance.Theme)
	}
}

func TestLoadClampsHandEditedValues(t *testing.T) {
	withTempConfigDir(t)

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	raw := `
[general]
lifespan_years = 200

[hours]
sleep = 30.0
shopping = 0.6
invented = 5.0
`
	if err := os.WriteFile(Path(), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.LifespanYears != catalog.MaxLifespanYears {
		t.Fatalf("lifespan = %d, want clamped to %d", cfg.General.LifespanYears, catalog.MaxLifespanYears)
	}
	if cfg.Hours["sleep"] != 24 {
		t.Fatalf("sleep = %v, want clamped to 24", cfg.Hours["sleep"])
	}
	if cfg.Hours["shopping"] != 0.5 {
		t.Fatalf("shopping = %v, want snapped to 0.5", cfg.Hours["shopping"])
	}
	if _, ok := cfg.Hours["invented"]; ok {
		t.Fatal("unknown activity key survived normalization")
	}
	// Omitted activities fall back to their defaults.
	if cfg.Hours["work"] != 7.5 {
		t.Fatalf("work = %v, want default 7.5", cfg.Hours["work"])
	}
}

func TestResetCopiesDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.LifespanYears = 60
	cfg.Hours["sleep"] = 3

	Reset(&cfg)

	if cfg.General.LifespanYears != catalog.DefaultLifespanYears {
		t.Fatalf("lifespan = %d after reset", cfg.General.LifespanYears)
	}
	if cfg.Hours["sleep"] != 8.5 {
		t.Fatalf("sleep = %v after reset, want 8.5", cfg.Hours["sleep"])
	}

	// The reset table is a copy; editing it must not bleed into the catalog.
	cfg.Hours["sleep"] = 1
	if catalog.DefaultHours()["sleep"] != 8.5 {
		t.Fatal("catalog defaults mutated through config")
	}
}
