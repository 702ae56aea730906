package cultivation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

const (
	secondsPerHour = 3600.0
	secondsPerDay  = 86400.0
)

// HarvestEstimate combines field operation and crop growth into the time
// from the start of sowing to harvest.
type HarvestEstimate struct {
	Sowing         SowingEstimate
	Compaction     float64 // Fractional growth rate reduction.
	GroundPressure float64 // Pa
	Growth         GrowthResult
	OperationHours float64
	GrowthDays     float64
	TotalDays      float64
}

// EstimateHarvest runs the three models. The compaction factor computed
// from c replaces g.CompactionEffect. Any unreachable stage makes the
// total unreachable.
func EstimateHarvest(s types.SowingParams, c types.CompactionParams, g types.GrowthParams) (HarvestEstimate, error) {
	sowing, err := SowingTimeDetail(s)
	if err != nil {
		return HarvestEstimate{}, fmt.Errorf("estimate harvest: %w", err)
	}

	est := HarvestEstimate{
		Sowing:         sowing,
		Compaction:     CompactionFactor(c),
		GroundPressure: GroundPressure(c),
	}

	g.CompactionEffect = est.Compaction
	growth, err := TimeToHarvest(g)
	if err != nil {
		return HarvestEstimate{}, fmt.Errorf("estimate harvest: %w", err)
	}
	est.Growth = growth

	est.OperationHours = sowing.Total / secondsPerHour
	est.GrowthDays = growth.Days
	est.TotalDays = sowing.Total/secondsPerDay + growth.Days
	return est, nil
}

// GrowthCurve samples the biomass fraction x(t)/K at evenly spaced days
// in [0, days]. It returns nil slices for an unreachable result.
func GrowthCurve(g GrowthResult, days float64, samples int) (t, fraction []float64) {
	if !g.Reachable() || samples < 2 || g.CarryingCapacity <= 0 || math.IsInf(days, 0) {
		return nil, nil
	}
	t = floats.Span(make([]float64, samples), 0, days)
	fraction = make([]float64, samples)
	for i, day := range t {
		fraction[i] = g.BiomassAt(day) / g.CarryingCapacity
	}
	return t, fraction
}
