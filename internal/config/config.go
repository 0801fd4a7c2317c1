// Package config loads runway presentation settings from TOML and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds all runway configuration. Scenario assumptions are fixed
// presets and are not configurable here.
type Config struct {
	Report     ReportConfig     `toml:"report"`
	Charts     ChartsConfig     `toml:"charts"`
	Appearance AppearanceConfig `toml:"appearance"`
	Export     ExportConfig     `toml:"export"`
}

// ReportConfig holds table and summary preferences.
type ReportConfig struct {
	Currency        string `toml:"currency" env:"RUNWAY_CURRENCY"`
	Locale          string `toml:"locale" env:"RUNWAY_LOCALE"`
	HighlightMonths []int  `toml:"highlight_months"`
}

// ChartsConfig holds chart rendering settings.
type ChartsConfig struct {
	OutputDir string `toml:"output_dir,omitempty" env:"RUNWAY_OUTPUT_DIR"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"RUNWAY_THEME"`
}

// ExportConfig holds SQLite export settings.
type ExportConfig struct {
	DBPath string `toml:"db_path,omitempty" env:"RUNWAY_EXPORT_DB"`
}

// DefaultHighlightMonths are annotated on charts and marked in tables.
var DefaultHighlightMonths = []int{1, 6, 12, 18, 24, 30, 36}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Report: ReportConfig{
			Currency:        "TWD",
			Locale:          "en",
			HighlightMonths: append([]int(nil), DefaultHighlightMonths...),
		},
		Charts: ChartsConfig{
			Width:  72,
			Height: 12,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "runway")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path (Path() when empty), returning defaults
// if it doesn't exist. Environment variables override file values.
func Load(path string) (Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied config path
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize fills values a partial config file may have zeroed.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Report.Currency == "" {
		c.Report.Currency = def.Report.Currency
	}
	if c.Report.Locale == "" {
		c.Report.Locale = def.Report.Locale
	}
	if len(c.Report.HighlightMonths) == 0 {
		c.Report.HighlightMonths = def.Report.HighlightMonths
	}
	if c.Charts.Width <= 0 {
		c.Charts.Width = def.Charts.Width
	}
	if c.Charts.Height <= 0 {
		c.Charts.Height = def.Charts.Height
	}
	if c.Appearance.Theme == "" {
		c.Appearance.Theme = def.Appearance.Theme
	}
}

// Save writes the config to path (Path() when empty).
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-supplied config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists at path (Path() when empty).
func Exists(path string) bool {
	if path == "" {
		path = Path()
	}
	_, err := os.Stat(path)
	return err == nil
}
