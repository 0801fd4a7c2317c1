// Package cmd implements the runway CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/config"
	"github.com/theirongolddev/runway/internal/logging"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/pipeline"
	"github.com/theirongolddev/runway/internal/report"
	"github.com/theirongolddev/runway/internal/theme"
)

var (
	flagConfig   string
	flagTheme    string
	flagQuiet    bool
	flagVerbose  bool
	flagScenario string
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Startup financial projection CLI",
	Long: "Project monthly users, revenue, cash flow and cash balance under the\n" +
		"Baseline and Conservative scenarios, and find the break-even month.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme ("+strings.Join(theme.Names(), ", ")+")")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details")
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "all", "Scenario to show: baseline, conservative or all")
}

// run is the state shared by every command after setup.
type run struct {
	cfg       config.Config
	log       *logrus.Logger
	proj      pipeline.Projection
	scenarios []model.ScenarioResult
	opts      report.Options
}

// setup loads configuration, applies appearance settings and computes the
// projection. It is the shared entry path of every command.
func setup() (*run, error) {
	log := logging.New(os.Stderr, logging.Level(flagVerbose, flagQuiet))

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	name := cfg.Appearance.Theme
	if flagTheme != "" {
		name = flagTheme
	}
	if !theme.SetActive(name) {
		log.WithField("theme", name).Warn("unknown theme, using " + theme.Active.Name)
	}
	if err := cli.SetLocale(cfg.Report.Locale); err != nil {
		log.WithError(err).Warn("keeping default locale")
	}

	proj, err := pipeline.RunAll(pipeline.Baseline())
	if err != nil {
		return nil, fmt.Errorf("running projection: %w", err)
	}
	for _, s := range proj.Scenarios {
		log.WithFields(logrus.Fields{
			"scenario":   s.Name,
			"months":     s.Series.Months(),
			"break_even": s.BreakEven.String(),
		}).Debug("scenario computed")
	}

	selected, err := selectScenarios(proj, flagScenario)
	if err != nil {
		return nil, err
	}

	return &run{
		cfg:       cfg,
		log:       log,
		proj:      proj,
		scenarios: selected,
		opts:      report.OptionsFrom(cfg),
	}, nil
}

// selectScenarios filters the projection by the --scenario flag value.
func selectScenarios(p pipeline.Projection, filter string) ([]model.ScenarioResult, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, "all") {
		return p.Scenarios, nil
	}
	for _, s := range p.Scenarios {
		if strings.EqualFold(s.Name, filter) {
			return []model.ScenarioResult{s}, nil
		}
	}
	return nil, fmt.Errorf("unknown scenario %q (want baseline, conservative or all)", filter)
}
