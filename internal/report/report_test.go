package report

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/runway/internal/config"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/pipeline"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func mustProjection(t *testing.T) pipeline.Projection {
	t.Helper()
	p, err := pipeline.RunAll(pipeline.Baseline())
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	return p
}

func testOptions() Options {
	return OptionsFrom(config.DefaultConfig())
}

func TestMonthlyTable(t *testing.T) {
	p := mustProjection(t)
	res := p.Scenarios[0]
	tbl := MonthlyTable(res, testOptions())

	if len(tbl.Rows) != 36 {
		t.Fatalf("rows = %d, want 36", len(tbl.Rows))
	}
	if len(tbl.Headers) != len(tbl.Rows[0]) {
		t.Fatalf("headers = %d, row cells = %d", len(tbl.Headers), len(tbl.Rows[0]))
	}
	if tbl.Rows[2][1] != "1,340" {
		t.Errorf("month 3 MAU = %q, want 1,340", tbl.Rows[2][1])
	}
	if tbl.Rows[2][2] != "15,722" {
		t.Errorf("month 3 subscription = %q, want 15,722", tbl.Rows[2][2])
	}
	if tbl.Rows[2][8] != "34.00" {
		t.Errorf("month 3 growth = %q, want 34.00", tbl.Rows[2][8])
	}
	if !strings.HasPrefix(tbl.Rows[0][0], "1*") || !tbl.Highlight[0] {
		t.Errorf("month 1 not highlighted: %q", tbl.Rows[0][0])
	}
	if tbl.Highlight[1] {
		t.Error("month 2 highlighted, want only configured months")
	}
	if res.BreakEven.OK && !strings.Contains(tbl.Rows[res.BreakEven.Month-1][0], "▲") {
		t.Errorf("break-even month row not marked: %q", tbl.Rows[res.BreakEven.Month-1][0])
	}
}

func TestAnalyze(t *testing.T) {
	res := model.ScenarioResult{
		Series: model.MonthlySeries{
			MAU:          model.Series{0, 0, 10, 20},
			TotalRevenue: model.Series{0, 0, 50, 40},
			CashBalance:  model.Series{100, 20, -30, -10},
		},
	}
	o := Analyze(res)
	if o.FinalMAU != 20 {
		t.Errorf("FinalMAU = %v, want 20", o.FinalMAU)
	}
	if o.MinCashBalance != -30 || o.MinCashMonth != 3 {
		t.Errorf("min cash = %v at %d, want -30 at 3", o.MinCashBalance, o.MinCashMonth)
	}
	if !o.CashOut || o.CashOutMonth != 3 {
		t.Errorf("cash out = %v/%d, want month 3", o.CashOut, o.CashOutMonth)
	}
	if o.PeakRevenue != 50 || o.PeakRevenueMonth != 3 {
		t.Errorf("peak revenue = %v at %d, want 50 at 3", o.PeakRevenue, o.PeakRevenueMonth)
	}
}

func TestSummaryPairs(t *testing.T) {
	p := mustProjection(t)
	pairs := SummaryPairs(p.Scenarios[1], testOptions())
	if len(pairs) == 0 || pairs[0][0] != "Break-even" {
		t.Fatalf("pairs = %v", pairs)
	}
	if pairs[0][1] != BreakEvenText(p.Scenarios[1].BreakEven) {
		t.Errorf("break-even line = %q", pairs[0][1])
	}
	if !strings.HasSuffix(pairs[1][1], "TWD") {
		t.Errorf("surplus line = %q, want currency suffix", pairs[1][1])
	}
}

func TestBreakEvenText(t *testing.T) {
	if got := BreakEvenText(model.BreakEvenAt(14)); got != "Break-even reached in month 14" {
		t.Errorf("BreakEvenText = %q", got)
	}
	if got := BreakEvenText(model.NoBreakEven); got != "No break-even within the horizon" {
		t.Errorf("BreakEvenText(none) = %q", got)
	}
}

func TestComparisonTable(t *testing.T) {
	tbl, err := ComparisonTable(mustProjection(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != 6 {
		t.Fatalf("rows = %d, want 6 factors", len(tbl.Rows))
	}
	want := map[string]string{
		"initial_growth_rate":        "0.80x",
		"monthly_subscription_price": "1.00x",
		"rpm":                        "0.80x",
	}
	for _, row := range tbl.Rows {
		if w, ok := want[row[0]]; ok && row[3] != w {
			t.Errorf("%s ratio = %q, want %q", row[0], row[3], w)
		}
	}
}

func TestComparisonTable_MissingScenario(t *testing.T) {
	p := mustProjection(t)
	p.Scenarios = p.Scenarios[:1]
	if _, err := ComparisonTable(p); err == nil {
		t.Fatal("expected error for projection without Conservative")
	}
}

func TestOutcomeTable(t *testing.T) {
	tbl, err := OutcomeTable(mustProjection(t), testOptions())
	if err != nil {
		t.Fatal(err)
	}
	last := tbl.Rows[len(tbl.Rows)-1]
	if last[0] != "Surplus gap" || !strings.HasPrefix(last[2], "-") {
		t.Errorf("surplus gap row = %v, want negative delta", last)
	}
}

func TestScenarioCharts(t *testing.T) {
	p := mustProjection(t)
	charts := ScenarioCharts(p.Scenarios[0], testOptions())
	wantNames := []string{
		"baseline_monthly_revenue_breakdown",
		"baseline_mau_growth",
		"baseline_monthly_revenue_over_time",
		"baseline_monthly_cash_flow",
		"baseline_growth_rate_decrease",
		"baseline_cash_balance",
	}
	if len(charts) != len(wantNames) {
		t.Fatalf("charts = %d, want %d", len(charts), len(wantNames))
	}
	for i, c := range charts {
		if c.Name != wantNames[i] {
			t.Errorf("chart %d = %q, want %q", i, c.Name, wantNames[i])
		}
		if !strings.HasPrefix(c.Body, "Baseline: ") {
			t.Errorf("chart %s missing scenario title", c.Name)
		}
		if !strings.Contains(c.Body, "M36 ") {
			t.Errorf("chart %s missing month 36 annotation", c.Name)
		}
	}
	if !strings.Contains(charts[5].Body, "Initial capital: 6.2M") {
		t.Errorf("cash balance chart missing capital reference:\n%s", charts[5].Body)
	}
	if !strings.Contains(charts[4].Body, "M1 0.00%") {
		t.Errorf("growth chart annotations missing:\n%s", charts[4].Body)
	}
	if charts[0].FileName() != "baseline_monthly_revenue_breakdown.txt" {
		t.Errorf("FileName = %q", charts[0].FileName())
	}
}

func TestComparisonChart(t *testing.T) {
	c, err := ComparisonChart(mustProjection(t), testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "assumption_comparison" {
		t.Errorf("Name = %q", c.Name)
	}
	for _, f := range []string{"initial_growth_rate", "rpm", "34.0%", "27.2%"} {
		if !strings.Contains(c.Body, f) {
			t.Errorf("comparison chart missing %q:\n%s", f, c.Body)
		}
	}
}

func TestFileSlug(t *testing.T) {
	if got := FileSlug(" Conservative Case "); got != "conservative_case" {
		t.Errorf("FileSlug = %q", got)
	}
}

func TestMAUBars(t *testing.T) {
	out := MAUBars(mustProjection(t), 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), out)
	}
	if got := strings.Count(lines[0], "█"); got != 20 {
		t.Errorf("baseline bar = %d cells, want full width 20", got)
	}
	if got := strings.Count(lines[1], "█"); got >= 20 {
		t.Errorf("conservative bar = %d cells, want shorter than baseline", got)
	}
}
