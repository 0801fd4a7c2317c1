// Package model defines domain types for runway scenario projections.
package model

import (
	"errors"
	"fmt"
	"math"
)

// Validation failures surfaced by Assumptions.Validate and the projection engine.
var (
	ErrInvalidHorizon   = errors.New("invalid horizon")
	ErrInvalidRateRatio = errors.New("invalid growth rate ratio")
	ErrInvalidFraction  = errors.New("invalid fraction")
)

// MinHorizonMonths is the shortest horizon the growth curve can normalize over.
// Two dormant months plus at least two growth months.
const MinHorizonMonths = 4

// Assumptions holds the scalar inputs of a single scenario.
// Values are copied by the engine and never mutated.
type Assumptions struct {
	HorizonMonths int

	InitialGrowthRate float64
	FinalGrowthRate   float64

	MonthlyPrice     float64
	AnnualPrice      float64
	SubscriptionRate float64 // share of MAU paying, 0-1
	RPM              float64 // ad revenue per thousand non-subscribers

	PersonnelCostLow  float64 // months 1-2
	PersonnelCostHigh float64 // months 3..H
	OperationalCost   float64

	InitialCapital float64
}

// Validate checks the preconditions the engine relies on.
func (a Assumptions) Validate() error {
	if a.HorizonMonths < MinHorizonMonths {
		return fmt.Errorf("horizon %d months, need at least %d: %w",
			a.HorizonMonths, MinHorizonMonths, ErrInvalidHorizon)
	}
	if err := ValidateGrowthRates(a.InitialGrowthRate, a.FinalGrowthRate); err != nil {
		return err
	}
	if math.IsNaN(a.SubscriptionRate) || a.SubscriptionRate < 0 || a.SubscriptionRate > 1 {
		return fmt.Errorf("subscription rate %v outside [0,1]: %w", a.SubscriptionRate, ErrInvalidFraction)
	}
	return nil
}

// ValidateGrowthRates rejects rate pairs for which r0*(r1/r0)^x is undefined.
func ValidateGrowthRates(initial, final float64) error {
	if initial == 0 {
		return fmt.Errorf("initial growth rate is zero: %w", ErrInvalidRateRatio)
	}
	if math.IsNaN(initial) || math.IsNaN(final) || initial < 0 || final < 0 {
		return fmt.Errorf("growth rates %v -> %v must be non-negative: %w", initial, final, ErrInvalidRateRatio)
	}
	return nil
}
