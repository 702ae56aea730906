package cultivation

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// minInitialFraction replaces a non-positive initial biomass fraction so
// the logistic constant stays finite.
const minInitialFraction = 1e-6

// GrowthResult is the solution of dx/dt = r*x*(1 - x/K) for the time at
// which biomass reaches the target fraction of K.
type GrowthResult struct {
	Days             float64 // +Inf when the effective rate is not positive.
	EffectiveRate    float64 // r*(1 - compaction effect), per day.
	InitialBiomass   float64 // x0 = initial fraction * K.
	CarryingCapacity float64 // K
	// Constant is A = (K - x0)/x0 in x(t) = K / (1 + A*exp(-r*t)).
	Constant float64
}

// Reachable reports whether the target is reached in finite time.
func (g GrowthResult) Reachable() bool {
	return !IsUnreachable(g.Days)
}

// BiomassAt evaluates the logistic closed form at t days.
func (g GrowthResult) BiomassAt(t float64) float64 {
	return g.CarryingCapacity / (1 + g.Constant*math.Exp(-g.EffectiveRate*t))
}

// TimeToHarvest solves the logistic model analytically. Compaction
// reduces the intrinsic rate to r*(1 - p.CompactionEffect). A target at
// or above carrying capacity, or one already met, returns 0 days; a
// non-positive effective rate returns +Inf days.
func TimeToHarvest(p types.GrowthParams) (GrowthResult, error) {
	if err := p.Validate(); err != nil {
		return GrowthResult{}, fmt.Errorf("time to harvest: %w", err)
	}

	initial := p.InitialFraction
	if initial <= 0 {
		initial = minInitialFraction
	}

	res := GrowthResult{
		EffectiveRate:    p.BaseRate * (1 - p.CompactionEffect),
		CarryingCapacity: p.CarryingCapacity,
	}
	if res.EffectiveRate <= 0 {
		res.Days = math.Inf(1)
		return res, nil
	}

	k := p.CarryingCapacity
	res.InitialBiomass = initial * k
	res.Constant = (k - res.InitialBiomass) / res.InitialBiomass
	if res.Constant <= 0 {
		// Already at or above carrying capacity.
		return res, nil
	}

	target := p.TargetFraction * k
	ratio := (k/target - 1) / res.Constant
	if ratio <= 0 {
		return res, nil
	}

	res.Days = math.Max(0, -(1/res.EffectiveRate)*math.Log(ratio))
	return res, nil
}
