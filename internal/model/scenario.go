package model

import "fmt"

// MonthlySeries holds every derived per-month sequence of a scenario.
// All fields share the same length (the horizon).
type MonthlySeries struct {
	GrowthRate          Series
	MAU                 Series
	SubscriptionRevenue Series
	AdRevenue           Series
	TotalRevenue        Series
	PersonnelCost       Series
	CashFlow            Series
	CumulativeSurplus   Series
	CashBalance         Series
}

// Months returns the horizon covered by the series.
func (m MonthlySeries) Months() int {
	return m.MAU.Len()
}

// BreakEven is an optional 1-based month.
type BreakEven struct {
	Month int
	OK    bool
}

// NoBreakEven is returned when cumulative surplus never turns non-negative.
var NoBreakEven = BreakEven{}

// BreakEvenAt returns a present break-even month.
func BreakEvenAt(month int) BreakEven {
	return BreakEven{Month: month, OK: true}
}

func (b BreakEven) String() string {
	if !b.OK {
		return "none"
	}
	return fmt.Sprintf("month %d", b.Month)
}

// ScenarioResult is the complete output of one scenario run.
type ScenarioResult struct {
	Name                   string
	Assumptions            Assumptions
	Series                 MonthlySeries
	BreakEven              BreakEven
	FinalCumulativeSurplus float64
}
