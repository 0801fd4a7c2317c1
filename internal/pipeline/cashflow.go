package pipeline

import "github.com/theirongolddev/runway/internal/model"

// LowCostMonths is how long the reduced personnel cost applies.
// It matches DormantMonths today but the two are independent.
const LowCostMonths = 2

// Costs holds the cost inputs of the cash-flow stage.
type Costs struct {
	PersonnelLow   float64
	PersonnelHigh  float64
	Operational    float64
	InitialCapital float64
}

// CashFlow holds the cost and cash series plus the break-even month.
type CashFlow struct {
	PersonnelCost     model.Series
	Net               model.Series
	CumulativeSurplus model.Series
	CashBalance       model.Series
	BreakEven         model.BreakEven
}

// AggregateCashFlow nets revenue against personnel and operational cost and
// accumulates the result.
func AggregateCashFlow(revenue model.Series, c Costs) CashFlow {
	n := revenue.Len()
	cf := CashFlow{
		PersonnelCost: model.NewSeries(n),
		Net:           model.NewSeries(n),
		CashBalance:   model.NewSeries(n),
	}

	for i := 0; i < n; i++ {
		personnel := c.PersonnelHigh
		if i < LowCostMonths {
			personnel = c.PersonnelLow
		}
		cf.PersonnelCost[i] = personnel
		cf.Net[i] = revenue[i] - personnel - c.Operational
	}

	cf.CumulativeSurplus = CumulativeSum(cf.Net)
	for i, v := range cf.CumulativeSurplus {
		cf.CashBalance[i] = c.InitialCapital + v
	}

	cf.BreakEven = FindBreakEven(cf.CumulativeSurplus)
	return cf
}

// CumulativeSum returns the running prefix sum of a series.
func CumulativeSum(s model.Series) model.Series {
	out := model.NewSeries(s.Len())
	running := 0.0
	for i, v := range s {
		running += v
		out[i] = running
	}
	return out
}

// FindBreakEven returns the first month whose cumulative surplus is >= 0.
func FindBreakEven(cumulative model.Series) model.BreakEven {
	for i, v := range cumulative {
		if v >= 0 {
			return model.BreakEvenAt(i + 1)
		}
	}
	return model.NoBreakEven
}

// FirstMonthBelow returns the first month whose value drops below threshold,
// e.g. the month a cash balance runs out.
func FirstMonthBelow(s model.Series, threshold float64) (int, bool) {
	for i, v := range s {
		if v < threshold {
			return i + 1, true
		}
	}
	return 0, false
}
