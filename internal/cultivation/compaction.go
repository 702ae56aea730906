package cultivation

import (
	"math"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// minReferencePressure guards the normalisation against a zero threshold.
const minReferencePressure = 1e-9

// CompactionFactor estimates the fractional reduction in crop growth rate
// caused by the tractor's ground pressure. Pressure up to the threshold
// does no harm; the excess is normalised against four times the threshold,
// scaled by KCompaction and clamped to [0, KCompaction].
//
// A non-positive contact area yields exactly 0.
func CompactionFactor(p types.CompactionParams) float64 {
	if p.ContactArea <= 0 {
		return 0.0
	}
	excess := math.Max(0, GroundPressure(p)-p.ThresholdPressure)

	ref := 4 * p.ThresholdPressure
	comp := excess / math.Max(minReferencePressure, ref)
	return clamp(comp*p.KCompaction, 0, p.KCompaction)
}

// GroundPressure is the pressure in Pa the tractor exerts on its contact area.
func GroundPressure(p types.CompactionParams) float64 {
	if p.ContactArea <= 0 {
		return 0
	}
	return p.TractorMass * p.Gravity / p.ContactArea
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
