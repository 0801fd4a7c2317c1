package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Break-even and cash summary per scenario",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	r, err := setup()
	if err != nil {
		return err
	}

	for _, res := range r.scenarios {
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %d months", strings.ToUpper(res.Name), res.Series.Months())))
		fmt.Println()
		fmt.Print(cli.RenderKeyValues(report.SummaryPairs(res, r.opts)))
	}
	fmt.Println()
	return nil
}
