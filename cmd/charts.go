package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/runway/internal/chart"
	"github.com/theirongolddev/runway/internal/report"
)

var flagOutDir string

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render projection charts, optionally saving them as text files",
	RunE:  runCharts,
}

func init() {
	chartsCmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "Write charts to this directory instead of the terminal")
	rootCmd.AddCommand(chartsCmd)
}

func runCharts(cmd *cobra.Command, _ []string) error {
	r, err := setup()
	if err != nil {
		return err
	}

	dir := r.cfg.Charts.OutputDir
	if cmd.Flags().Changed("out") {
		dir = flagOutDir
	}
	if dir == "" {
		return printCharts(r)
	}

	w := chart.FileWriter{Dir: dir, Log: r.log}
	opts := r.opts
	opts.Renderer = w.Renderer()

	charts, err := renderCharts(r, opts)
	if err != nil {
		return err
	}
	for _, c := range charts {
		path, err := w.Write(c.FileName(), c.Body)
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n", path)
	}
	r.log.WithField("count", len(charts)).Info("charts written")
	return nil
}

func printCharts(r *run) error {
	charts, err := renderCharts(r, r.opts)
	if err != nil {
		return err
	}
	for _, c := range charts {
		fmt.Println()
		fmt.Print(c.Body)
	}
	return nil
}

// renderCharts renders every chart of the selected scenarios. The
// assumption comparison is included when both presets are selected.
func renderCharts(r *run, opts report.Options) ([]report.Chart, error) {
	var charts []report.Chart
	for _, res := range r.scenarios {
		charts = append(charts, report.ScenarioCharts(res, opts)...)
	}
	if len(r.scenarios) == len(r.proj.Scenarios) {
		c, err := report.ComparisonChart(r.proj, opts)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return charts, nil
}
