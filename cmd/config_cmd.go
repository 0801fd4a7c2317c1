package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/runway/internal/config"
	"github.com/theirongolddev/runway/internal/theme"
)

var flagWriteConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWriteConfig, "init", false, "Write the effective configuration to the config file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	path := flagConfig
	if path == "" {
		path = config.Path()
	}

	fmt.Printf("  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Report]")
	fmt.Printf("    Currency:         %s\n", cfg.Report.Currency)
	fmt.Printf("    Locale:           %s\n", cfg.Report.Locale)
	fmt.Printf("    Highlight months: %s\n", joinInts(cfg.Report.HighlightMonths))
	fmt.Println()

	fmt.Println("  [Charts]")
	if cfg.Charts.OutputDir != "" {
		fmt.Printf("    Output dir: %s\n", cfg.Charts.OutputDir)
	} else {
		fmt.Println("    Output dir: terminal")
	}
	fmt.Printf("    Size:       %dx%d\n", cfg.Charts.Width, cfg.Charts.Height)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s (available: %s)\n", cfg.Appearance.Theme, strings.Join(theme.Names(), ", "))
	fmt.Println()

	fmt.Println("  [Export]")
	if cfg.Export.DBPath != "" {
		fmt.Printf("    Database: %s\n", cfg.Export.DBPath)
	} else {
		fmt.Println("    Database: not set (use `runway export --db PATH`)")
	}
	fmt.Println()

	if flagWriteConfig {
		if err := config.Save(path, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("  Saved to %s\n", path)
	}
	return nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ", ")
}
