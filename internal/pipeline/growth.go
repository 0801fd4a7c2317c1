// Package pipeline computes scenario projections: growth curve, revenue,
// cash flow and break-even, in that order. Every stage is a pure function.
package pipeline

import (
	"fmt"
	"math"

	"github.com/theirongolddev/runway/internal/model"
)

const (
	// DormantMonths is the pre-launch period with no users and no revenue.
	DormantMonths = 2

	// BootstrapUsers seeds the first growth month after the dormant period.
	BootstrapUsers = 1000
)

// GrowthRateAt returns the convex log-space interpolation r0*(r1/r0)^(t^2)
// for a normalized position t in [0,1].
func GrowthRateAt(t, initial, final float64) float64 {
	switch {
	case t <= 0:
		return initial
	case t >= 1:
		return final
	}
	return initial * math.Pow(final/initial, t*t)
}

// curvePosition maps a 0-based month index onto [0,1] across the growth period.
func curvePosition(index, months int) float64 {
	return float64(index-DormantMonths) / float64(months-1-DormantMonths)
}

// GrowthCurve returns the monthly growth-rate and MAU series for a horizon.
// The first two months are dormant; MAU compounds from BootstrapUsers after that.
func GrowthCurve(months int, initial, final float64) (rates, mau model.Series, err error) {
	if months < model.MinHorizonMonths {
		return nil, nil, fmt.Errorf("growth curve over %d months: %w", months, model.ErrInvalidHorizon)
	}
	if err := model.ValidateGrowthRates(initial, final); err != nil {
		return nil, nil, fmt.Errorf("growth curve: %w", err)
	}

	rates = model.NewSeries(months)
	mau = model.NewSeries(months)

	prev := float64(BootstrapUsers)
	for i := DormantMonths; i < months; i++ {
		rate := GrowthRateAt(curvePosition(i, months), initial, final)
		rates[i] = rate
		prev *= 1 + rate
		mau[i] = prev
	}

	return rates, mau, nil
}
