package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare Baseline and Conservative assumptions and outcomes",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	r, err := setup()
	if err != nil {
		return err
	}

	assumptions, err := report.ComparisonTable(r.proj)
	if err != nil {
		return err
	}
	outcomes, err := report.OutcomeTable(r.proj, r.opts)
	if err != nil {
		return err
	}
	bars, err := report.ComparisonChart(r.proj, r.opts)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BASELINE vs CONSERVATIVE"))
	fmt.Println()
	fmt.Print(cli.RenderTable(assumptions))
	fmt.Println()
	fmt.Print(bars.Body)
	fmt.Println()
	fmt.Print(cli.RenderTable(outcomes))
	fmt.Println()
	fmt.Println("  Final MAU")
	fmt.Print(report.MAUBars(r.proj, max(r.opts.Width-40, 10)))
	return nil
}
