package pipeline

import (
	"fmt"

	"github.com/theirongolddev/runway/internal/model"
)

// Scenario names.
const (
	ScenarioBaseline     = "Baseline"
	ScenarioConservative = "Conservative"
)

// ConservativeFactor scales growth rates, subscription rate and RPM when
// deriving the Conservative scenario from Baseline.
const ConservativeFactor = 0.8

// Baseline returns the optimistic preset.
func Baseline() model.Assumptions {
	return model.Assumptions{
		HorizonMonths:     36,
		InitialGrowthRate: 0.34,
		FinalGrowthRate:   0.03,
		MonthlyPrice:      320,
		AnnualPrice:       3200,
		SubscriptionRate:  0.02,
		RPM:               65,
		PersonnelCostLow:  140_000,
		PersonnelCostHigh: 280_000,
		OperationalCost:   53_968,
		InitialCapital:    6_200_000,
	}
}

// DeriveConservative lowers the demand-side assumptions of base.
// Prices and costs are unchanged.
func DeriveConservative(base model.Assumptions) model.Assumptions {
	c := base
	c.InitialGrowthRate = base.InitialGrowthRate * ConservativeFactor
	c.FinalGrowthRate = base.FinalGrowthRate * ConservativeFactor
	c.SubscriptionRate = base.SubscriptionRate * ConservativeFactor
	c.RPM = base.RPM * ConservativeFactor
	return c
}

// Run computes one scenario end to end.
func Run(name string, a model.Assumptions) (model.ScenarioResult, error) {
	if err := a.Validate(); err != nil {
		return model.ScenarioResult{}, fmt.Errorf("scenario %s: %w", name, err)
	}

	rates, mau, err := GrowthCurve(a.HorizonMonths, a.InitialGrowthRate, a.FinalGrowthRate)
	if err != nil {
		return model.ScenarioResult{}, fmt.Errorf("scenario %s: %w", name, err)
	}

	rev := ComposeRevenue(mau, Pricing{
		MonthlyPrice:     a.MonthlyPrice,
		AnnualPrice:      a.AnnualPrice,
		SubscriptionRate: a.SubscriptionRate,
		RPM:              a.RPM,
	})

	cf := AggregateCashFlow(rev.Total, Costs{
		PersonnelLow:   a.PersonnelCostLow,
		PersonnelHigh:  a.PersonnelCostHigh,
		Operational:    a.OperationalCost,
		InitialCapital: a.InitialCapital,
	})

	return model.ScenarioResult{
		Name:        name,
		Assumptions: a,
		Series: model.MonthlySeries{
			GrowthRate:          rates,
			MAU:                 mau,
			SubscriptionRevenue: rev.Subscription,
			AdRevenue:           rev.Ad,
			TotalRevenue:        rev.Total,
			PersonnelCost:       cf.PersonnelCost,
			CashFlow:            cf.Net,
			CumulativeSurplus:   cf.CumulativeSurplus,
			CashBalance:         cf.CashBalance,
		},
		BreakEven:              cf.BreakEven,
		FinalCumulativeSurplus: cf.CumulativeSurplus.Last(),
	}, nil
}

// Projection holds the results of every scenario in presentation order.
type Projection struct {
	Scenarios []model.ScenarioResult
}

// ByName returns the scenario with the given name (case-sensitive).
func (p Projection) ByName(name string) (model.ScenarioResult, bool) {
	for _, s := range p.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return model.ScenarioResult{}, false
}

// RunAll runs Baseline and the Conservative scenario derived from it.
func RunAll(base model.Assumptions) (Projection, error) {
	baseline, err := Run(ScenarioBaseline, base)
	if err != nil {
		return Projection{}, err
	}
	conservative, err := Run(ScenarioConservative, DeriveConservative(base))
	if err != nil {
		return Projection{}, err
	}
	return Projection{Scenarios: []model.ScenarioResult{baseline, conservative}}, nil
}
