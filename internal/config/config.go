// Package config persists the user's starting values between runs: lifespan,
// per-activity hours, and appearance.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"lifespend/internal/catalog"

	"github.com/BurntSushi/toml"
)

// Config holds all lifespend configuration.
type Config struct {
	General    GeneralConfig      `toml:"general"`
	Hours      map[string]float64 `toml:"hours,omitempty"`
	Appearance AppearanceConfig   `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	LifespanYears int `toml:"lifespan_years"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the configuration seeded from the activity catalog.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LifespanYears: catalog.DefaultLifespanYears,
		},
		Hours: catalog.DefaultHours(),
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lifespend")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lifespend")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Loaded values are normalized through the catalog so a hand-edited file
// can never push an input outside its field's range.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	normalize(&cfg)
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Reset restores hours and lifespan to catalog defaults. The defaults table
// is copied in; nothing shared is mutated.
func Reset(cfg *Config) {
	cfg.General.LifespanYears = catalog.DefaultLifespanYears
	cfg.Hours = catalog.DefaultHours()
}

// normalize clamps every stored value into its field's range and fills in
// any activity the file omitted. Keys outside the catalog are dropped.
func normalize(cfg *Config) {
	cfg.General.LifespanYears = catalog.ClampLifespan(cfg.General.LifespanYears)

	hours := make(map[string]float64, 12)
	for _, f := range catalog.Fields() {
		v, ok := cfg.Hours[f.Key]
		if !ok {
			v = f.DefaultHours
		}
		hours[f.Key] = f.Clamp(v)
	}
	cfg.Hours = hours
}
