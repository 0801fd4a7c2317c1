package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/runway/internal/chart"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/pipeline"
	"github.com/theirongolddev/runway/internal/theme"
)

// Chart is a rendered chart and the file name it is saved under.
type Chart struct {
	Name string // file name without extension
	Body string
}

// FileName returns the chart's file name.
func (c Chart) FileName() string {
	return c.Name + ".txt"
}

func (o Options) chartOptions(title string, res model.ScenarioResult, format func(float64) string) chart.Options {
	return chart.Options{
		Title:     fmt.Sprintf("%s: %s", res.Name, title),
		Width:     o.Width,
		Height:    o.Height,
		Highlight: o.Highlight,
		BreakEven: res.BreakEven,
		Format:    format,
		Renderer:  o.Renderer,
	}
}

// ScenarioCharts renders the six per-scenario charts.
func ScenarioCharts(res model.ScenarioResult, opts Options) []Chart {
	t := theme.Active
	s := res.Series
	slug := FileSlug(res.Name)

	breakdown := opts.chartOptions(
		fmt.Sprintf("Monthly Revenue Breakdown (Subscription vs Ad, %s)", opts.Currency), res, cli.FormatCompact)
	mau := opts.chartOptions("MAU Growth Over Time", res, cli.FormatCompact)
	revenue := opts.chartOptions(fmt.Sprintf("Monthly Revenue Over Time (%s)", opts.Currency), res, cli.FormatCompact)

	cashFlow := opts.chartOptions(fmt.Sprintf("Monthly Cash Flow Over Time (%s)", opts.Currency), res, cli.FormatCompact)
	cashFlow.Reference = &chart.Reference{Value: 0, Label: "Zero cash flow"}

	growth := opts.chartOptions("Growth Rate Decrease Over Time (%)", res, func(v float64) string {
		return fmt.Sprintf("%.2f%%", v)
	})

	balance := opts.chartOptions(fmt.Sprintf("Cash Balance Over Time (%s)", opts.Currency), res, cli.FormatCompact)
	balance.Reference = &chart.Reference{Value: res.Assumptions.InitialCapital, Label: "Initial capital"}

	return []Chart{
		{
			Name: slug + "_monthly_revenue_breakdown",
			Body: chart.Stacked([]chart.Layer{
				{Name: "Subscription Revenue", Values: s.SubscriptionRevenue.Values(), Color: t.Subscription},
				{Name: "Ad Revenue", Values: s.AdRevenue.Values(), Color: t.Ads},
			}, breakdown),
		},
		{Name: slug + "_mau_growth", Body: chart.Columns(s.MAU.Values(), t.Users, mau)},
		{Name: slug + "_monthly_revenue_over_time", Body: chart.Columns(s.TotalRevenue.Values(), t.Revenue, revenue)},
		{Name: slug + "_monthly_cash_flow", Body: chart.Columns(s.CashFlow.Values(), t.CashFlow, cashFlow)},
		{Name: slug + "_growth_rate_decrease", Body: chart.Columns(s.GrowthRate.Scale(100).Values(), t.GrowthRate, growth)},
		{Name: slug + "_cash_balance", Body: chart.Columns(s.CashBalance.Values(), t.CashBalance, balance)},
	}
}

// ComparisonChart renders the assumption comparison between the two presets
// as paired bars, each factor scaled to its larger value.
func ComparisonChart(p pipeline.Projection, opts Options) (Chart, error) {
	base, cons, err := pair(p)
	if err != nil {
		return Chart{}, err
	}
	t := theme.Active
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	barWidth := max(opts.Width-36, 10)
	factors := Factors(base.Assumptions, cons.Assumptions)
	nameW := 0
	for _, f := range factors {
		nameW = max(nameW, len(f.Name))
	}

	var b strings.Builder
	b.WriteString(r.NewStyle().Bold(true).Foreground(t.TextPrimary).
		Render("Comparison of Key Assumptions: Baseline vs. Conservative"))
	b.WriteString("\n\n")

	bar := func(v, peak float64) int {
		if peak <= 0 {
			return 0
		}
		return max(0, min(int(v/peak*float64(barWidth)+0.5), barWidth))
	}

	baseStyle := r.NewStyle().Foreground(t.Accent)
	consStyle := r.NewStyle().Foreground(t.Warning)
	for _, f := range factors {
		peak := max(f.Baseline, f.Conservative)
		fmt.Fprintf(&b, "  %-*s  %s %s\n", nameW, f.Name,
			baseStyle.Render(strings.Repeat("█", bar(f.Baseline, peak))), f.format(f.Baseline))
		fmt.Fprintf(&b, "  %-*s  %s %s\n", nameW, "",
			consStyle.Render(strings.Repeat("█", bar(f.Conservative, peak))), f.format(f.Conservative))
	}

	b.WriteString("\n  ")
	b.WriteString(baseStyle.Render("█") + " " + pipeline.ScenarioBaseline + "  ")
	b.WriteString(consStyle.Render("█") + " " + pipeline.ScenarioConservative + "\n\n")
	note := r.NewStyle().Foreground(t.TextMuted)
	b.WriteString(note.Render("  Growth starts high in month 3 and decays convexly until the final month.") + "\n")
	b.WriteString(note.Render(fmt.Sprintf(
		"  Conservative scales growth rates, subscription rate and RPM by %.1fx; prices and costs are unchanged.",
		pipeline.ConservativeFactor)) + "\n")

	return Chart{Name: "assumption_comparison", Body: b.String()}, nil
}
