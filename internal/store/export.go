// Package store writes scenario projections to a SQLite export database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/runway/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrScenarioNotFound is returned when a scenario has not been exported.
var ErrScenarioNotFound = errors.New("scenario not found")

// Export is a SQLite database holding exported scenario results.
type Export struct {
	db *sql.DB
}

// Open opens or creates the export database at the given path.
func Open(dbPath string) (*Export, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Export{db: db}, nil
}

// Close closes the export database.
func (e *Export) Close() error {
	return e.db.Close()
}

// money rounds a currency amount to cents for storage.
func money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}

func parseMoney(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}

// SaveResult stores a scenario and its monthly series, replacing any previous
// export under the same name.
func (e *Export) SaveResult(res model.ScenarioResult, exportedAt time.Time) error {
	tx, err := e.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	a := res.Assumptions
	var breakEven sql.NullInt64
	if res.BreakEven.OK {
		breakEven = sql.NullInt64{Int64: int64(res.BreakEven.Month), Valid: true}
	}

	// Delete first so the cascade clears stale months.
	if _, err := tx.Exec("DELETE FROM scenarios WHERE name = ?", res.Name); err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO scenarios
		(name, horizon_months, initial_growth_rate, final_growth_rate,
		 monthly_price, annual_price, subscription_rate, rpm,
		 personnel_cost_low, personnel_cost_high, operational_cost, initial_capital,
		 break_even_month, final_cumulative_surplus, exported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.Name, a.HorizonMonths, a.InitialGrowthRate, a.FinalGrowthRate,
		money(a.MonthlyPrice), money(a.AnnualPrice), a.SubscriptionRate, money(a.RPM),
		money(a.PersonnelCostLow), money(a.PersonnelCostHigh), money(a.OperationalCost), money(a.InitialCapital),
		breakEven, money(res.FinalCumulativeSurplus), exportedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO scenario_months
		(scenario, month, growth_rate, mau, subscription_revenue, ad_revenue,
		 total_revenue, personnel_cost, cash_flow, cumulative_surplus, cash_balance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	s := res.Series
	for m := 1; m <= s.Months(); m++ {
		_, err = stmt.Exec(res.Name, m,
			s.GrowthRate.Month(m), s.MAU.Month(m),
			money(s.SubscriptionRevenue.Month(m)), money(s.AdRevenue.Month(m)),
			money(s.TotalRevenue.Month(m)), money(s.PersonnelCost.Month(m)),
			money(s.CashFlow.Month(m)), money(s.CumulativeSurplus.Month(m)),
			money(s.CashBalance.Month(m)),
		)
		if err != nil {
			return fmt.Errorf("month %d: %w", m, err)
		}
	}

	return tx.Commit()
}

// ScenarioNames returns the exported scenario names in alphabetical order.
func (e *Export) ScenarioNames() ([]string, error) {
	rows, err := e.db.Query("SELECT name FROM scenarios ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// LoadResult reads an exported scenario back. Amounts come back rounded to cents.
func (e *Export) LoadResult(name string) (model.ScenarioResult, error) {
	res := model.ScenarioResult{Name: name}
	a := &res.Assumptions

	var (
		monthly, annual, rpm, low, high, opex, capital, final string
		breakEven                                             sql.NullInt64
	)
	err := e.db.QueryRow(`SELECT
		horizon_months, initial_growth_rate, final_growth_rate,
		monthly_price, annual_price, subscription_rate, rpm,
		personnel_cost_low, personnel_cost_high, operational_cost, initial_capital,
		break_even_month, final_cumulative_surplus
		FROM scenarios WHERE name = ?`, name).Scan(
		&a.HorizonMonths, &a.InitialGrowthRate, &a.FinalGrowthRate,
		&monthly, &annual, &a.SubscriptionRate, &rpm,
		&low, &high, &opex, &capital,
		&breakEven, &final,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return res, fmt.Errorf("%s: %w", name, ErrScenarioNotFound)
	}
	if err != nil {
		return res, err
	}

	for _, f := range []struct {
		src string
		dst *float64
	}{
		{monthly, &a.MonthlyPrice}, {annual, &a.AnnualPrice}, {rpm, &a.RPM},
		{low, &a.PersonnelCostLow}, {high, &a.PersonnelCostHigh},
		{opex, &a.OperationalCost}, {capital, &a.InitialCapital},
		{final, &res.FinalCumulativeSurplus},
	} {
		if *f.dst, err = parseMoney(f.src); err != nil {
			return res, err
		}
	}
	if breakEven.Valid {
		res.BreakEven = model.BreakEvenAt(int(breakEven.Int64))
	}

	n := a.HorizonMonths
	s := model.MonthlySeries{
		GrowthRate:          model.NewSeries(n),
		MAU:                 model.NewSeries(n),
		SubscriptionRevenue: model.NewSeries(n),
		AdRevenue:           model.NewSeries(n),
		TotalRevenue:        model.NewSeries(n),
		PersonnelCost:       model.NewSeries(n),
		CashFlow:            model.NewSeries(n),
		CumulativeSurplus:   model.NewSeries(n),
		CashBalance:         model.NewSeries(n),
	}

	rows, err := e.db.Query(`SELECT
		month, growth_rate, mau, subscription_revenue, ad_revenue, total_revenue,
		personnel_cost, cash_flow, cumulative_surplus, cash_balance
		FROM scenario_months WHERE scenario = ? ORDER BY month`, name)
	if err != nil {
		return res, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var month int
		var amounts [7]string
		var rate, mau float64
		if err := rows.Scan(&month, &rate, &mau,
			&amounts[0], &amounts[1], &amounts[2], &amounts[3], &amounts[4], &amounts[5], &amounts[6]); err != nil {
			return res, err
		}
		if month < 1 || month > n {
			return res, fmt.Errorf("%s: month %d outside horizon %d", name, month, n)
		}
		i := month - 1
		s.GrowthRate[i] = rate
		s.MAU[i] = mau
		dsts := []model.Series{
			s.SubscriptionRevenue, s.AdRevenue, s.TotalRevenue, s.PersonnelCost,
			s.CashFlow, s.CumulativeSurplus, s.CashBalance,
		}
		for k, src := range amounts {
			if dsts[k][i], err = parseMoney(src); err != nil {
				return res, err
			}
		}
	}
	res.Series = s
	return res, rows.Err()
}

// MonthCount returns the number of exported month rows for a scenario.
func (e *Export) MonthCount(name string) (int, error) {
	var count int
	err := e.db.QueryRow("SELECT COUNT(*) FROM scenario_months WHERE scenario = ?", name).Scan(&count)
	return count, err
}
