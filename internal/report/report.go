// Package report turns scenario projections into tables, summaries and charts.
// It is the single presentation adapter shared by every runway command.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/config"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/pipeline"
	"github.com/theirongolddev/runway/internal/theme"
)

// Options holds presentation settings.
type Options struct {
	Currency  string
	Highlight []int
	Width     int
	Height    int
	Renderer  *lipgloss.Renderer // nil uses the default terminal renderer
}

// OptionsFrom builds Options from the loaded configuration.
func OptionsFrom(cfg config.Config) Options {
	return Options{
		Currency:  cfg.Report.Currency,
		Highlight: cfg.Report.HighlightMonths,
		Width:     cfg.Charts.Width,
		Height:    cfg.Charts.Height,
	}
}

func (o Options) highlightSet(months int) map[int]bool {
	set := make(map[int]bool, len(o.Highlight))
	for _, m := range o.Highlight {
		if m >= 1 && m <= months {
			set[m] = true
		}
	}
	return set
}

// Outlook holds derived cash metrics for a scenario.
type Outlook struct {
	FinalMAU         float64
	FinalCashBalance float64
	PeakRevenue      float64
	PeakRevenueMonth int
	MinCashBalance   float64
	MinCashMonth     int
	CashOutMonth     int // first month with a negative cash balance
	CashOut          bool
}

// Analyze derives the Outlook of a scenario result.
func Analyze(res model.ScenarioResult) Outlook {
	s := res.Series
	o := Outlook{
		FinalMAU:         s.MAU.Last(),
		FinalCashBalance: s.CashBalance.Last(),
	}
	o.PeakRevenue, o.PeakRevenueMonth = s.TotalRevenue.Max()
	o.MinCashBalance, o.MinCashMonth = s.CashBalance.Min()
	o.CashOutMonth, o.CashOut = pipeline.FirstMonthBelow(s.CashBalance, 0)
	return o
}

// BreakEvenText describes the break-even outcome in a sentence.
func BreakEvenText(be model.BreakEven) string {
	if !be.OK {
		return "No break-even within the horizon"
	}
	return fmt.Sprintf("Break-even reached in month %d", be.Month)
}

// SummaryPairs returns the label/value lines of a scenario summary.
func SummaryPairs(res model.ScenarioResult, opts Options) [][2]string {
	o := Analyze(res)
	cur := opts.Currency

	cashOut := "never"
	if o.CashOut {
		cashOut = cli.FormatMonth(o.CashOutMonth)
	}

	return [][2]string{
		{"Break-even", BreakEvenText(res.BreakEven)},
		{"Final cumulative surplus", cli.RenderSignedMoney(res.FinalCumulativeSurplus, cur)},
		{"Final cash balance", cli.RenderSignedMoney(o.FinalCashBalance, cur)},
		{"Lowest cash balance", fmt.Sprintf("%s (%s)", cli.FormatMoney(o.MinCashBalance, cur), cli.FormatMonth(o.MinCashMonth))},
		{"Cash runs out", cashOut},
		{"Final MAU", cli.FormatNumber(o.FinalMAU)},
		{"Peak monthly revenue", fmt.Sprintf("%s (%s)", cli.FormatMoney(o.PeakRevenue, cur), cli.FormatMonth(o.PeakRevenueMonth))},
		{"Cash balance trend", cli.RenderSparkline(res.Series.CashBalance.Values())},
	}
}

// MonthlyHeaders are the columns of MonthlyTable.
var MonthlyHeaders = []string{
	"Month", "MAU", "Subscription", "Ads", "Total Revenue",
	"Cash Flow", "Cumulative", "Cash Balance", "Growth (%)",
}

// MonthlyTable renders every month of a scenario. Highlighted months are
// marked with a trailing asterisk and the highlight color.
func MonthlyTable(res model.ScenarioResult, opts Options) cli.Table {
	s := res.Series
	months := s.Months()
	hl := opts.highlightSet(months)
	cur := opts.Currency

	t := cli.Table{
		Title:     fmt.Sprintf("%s Scenario (amounts in %s)", res.Name, cur),
		Headers:   MonthlyHeaders,
		Rows:      make([][]string, 0, months),
		Highlight: make(map[int]bool),
	}
	for m := 1; m <= months; m++ {
		label := fmt.Sprintf("%d", m)
		if hl[m] {
			label += "*"
			t.Highlight[len(t.Rows)] = true
		}
		if res.BreakEven.OK && res.BreakEven.Month == m {
			label += " ▲"
		}
		t.Rows = append(t.Rows, []string{
			label,
			cli.FormatNumber(s.MAU.Month(m)),
			cli.FormatNumber(s.SubscriptionRevenue.Month(m)),
			cli.FormatNumber(s.AdRevenue.Month(m)),
			cli.FormatNumber(s.TotalRevenue.Month(m)),
			cli.FormatNumber(s.CashFlow.Month(m)),
			cli.FormatNumber(s.CumulativeSurplus.Month(m)),
			cli.FormatNumber(s.CashBalance.Month(m)),
			cli.FormatRate(s.GrowthRate.Month(m)),
		})
	}
	return t
}

// Factor is one assumption compared across scenarios.
type Factor struct {
	Name         string
	Baseline     float64
	Conservative float64
	Percent      bool
}

// Factors lists the six demand-side assumptions compared between scenarios.
func Factors(base, cons model.Assumptions) []Factor {
	return []Factor{
		{"initial_growth_rate", base.InitialGrowthRate, cons.InitialGrowthRate, true},
		{"final_growth_rate", base.FinalGrowthRate, cons.FinalGrowthRate, true},
		{"monthly_subscription_price", base.MonthlyPrice, cons.MonthlyPrice, false},
		{"annual_subscription_price", base.AnnualPrice, cons.AnnualPrice, false},
		{"subscription_rate", base.SubscriptionRate, cons.SubscriptionRate, true},
		{"rpm", base.RPM, cons.RPM, false},
	}
}

func (f Factor) format(v float64) string {
	if f.Percent {
		return cli.FormatPercent(v)
	}
	return fmt.Sprintf("%g", v)
}

// ComparisonTable compares the assumptions of the two presets.
func ComparisonTable(p pipeline.Projection) (cli.Table, error) {
	base, cons, err := pair(p)
	if err != nil {
		return cli.Table{}, err
	}

	rows := make([][]string, 0, 6)
	for _, f := range Factors(base.Assumptions, cons.Assumptions) {
		ratio := "-"
		if f.Baseline != 0 {
			ratio = fmt.Sprintf("%.2fx", f.Conservative/f.Baseline)
		}
		rows = append(rows, []string{f.Name, f.format(f.Baseline), f.format(f.Conservative), ratio})
	}
	return cli.Table{
		Title:   "Key Assumptions",
		Headers: []string{"Factor", pipeline.ScenarioBaseline, pipeline.ScenarioConservative, "Ratio"},
		Rows:    rows,
	}, nil
}

// OutcomeTable compares the headline results of the two presets.
func OutcomeTable(p pipeline.Projection, opts Options) (cli.Table, error) {
	base, cons, err := pair(p)
	if err != nil {
		return cli.Table{}, err
	}
	bo, co := Analyze(base), Analyze(cons)
	cur := opts.Currency

	return cli.Table{
		Title:   "Outcomes",
		Headers: []string{"Metric", pipeline.ScenarioBaseline, pipeline.ScenarioConservative},
		Rows: [][]string{
			{"Break-even", base.BreakEven.String(), cons.BreakEven.String()},
			{"Final cumulative surplus", cli.FormatMoney(base.FinalCumulativeSurplus, cur), cli.FormatMoney(cons.FinalCumulativeSurplus, cur)},
			{"Final cash balance", cli.FormatMoney(bo.FinalCashBalance, cur), cli.FormatMoney(co.FinalCashBalance, cur)},
			{"Lowest cash balance", cli.FormatMoney(bo.MinCashBalance, cur), cli.FormatMoney(co.MinCashBalance, cur)},
			{"Final MAU", cli.FormatNumber(bo.FinalMAU), cli.FormatNumber(co.FinalMAU)},
			{"---"},
			{"Surplus gap", "", cli.FormatDelta(cons.FinalCumulativeSurplus, base.FinalCumulativeSurplus, cur)},
		},
	}, nil
}

// MAUBars renders the final MAU of each scenario as horizontal bars scaled
// to the largest one.
func MAUBars(p pipeline.Projection, width int) string {
	peak, nameW := 0.0, 0
	for _, s := range p.Scenarios {
		peak = max(peak, s.Series.MAU.Last())
		nameW = max(nameW, len(s.Name))
	}

	var b strings.Builder
	for _, s := range p.Scenarios {
		final := s.Series.MAU.Last()
		label := fmt.Sprintf("%-*s %12s", nameW, s.Name, cli.FormatNumber(final))
		b.WriteString(cli.RenderHorizontalBar(label, final, peak, width, theme.Active.Users))
		b.WriteString("\n")
	}
	return b.String()
}

func pair(p pipeline.Projection) (base, cons model.ScenarioResult, err error) {
	base, ok := p.ByName(pipeline.ScenarioBaseline)
	if !ok {
		return base, cons, fmt.Errorf("projection has no %s scenario", pipeline.ScenarioBaseline)
	}
	cons, ok = p.ByName(pipeline.ScenarioConservative)
	if !ok {
		return base, cons, fmt.Errorf("projection has no %s scenario", pipeline.ScenarioConservative)
	}
	return base, cons, nil
}

// FileSlug converts a scenario name into a file-name prefix.
func FileSlug(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
