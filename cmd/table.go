package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/report"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Monthly projection table per scenario",
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(_ *cobra.Command, _ []string) error {
	r, err := setup()
	if err != nil {
		return err
	}

	for _, res := range r.scenarios {
		fmt.Println()
		fmt.Print(cli.RenderTable(report.MonthlyTable(res, r.opts)))
		fmt.Printf("  %s\n", report.BreakEvenText(res.BreakEven))
		fmt.Printf("  Final cumulative surplus: %s\n",
			cli.RenderSignedMoney(res.FinalCumulativeSurplus, r.opts.Currency))
	}
	fmt.Println()
	fmt.Println("  * highlighted month   ▲ break-even month")
	return nil
}
