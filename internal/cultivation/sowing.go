// Package cultivation estimates the time from sowing a paddy to harvest.
//
// Three independent models feed the estimate: tractor dynamics give the
// field operation time, a soil pressure heuristic gives a compaction
// factor, and the analytic logistic curve gives the biological growth
// time slowed by that compaction. Targets that can never be reached are
// reported as +Inf, not as errors; see IsUnreachable.
package cultivation

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// IsUnreachable reports whether v is the infinite sentinel used for
// configurations that never reach their target.
func IsUnreachable(v float64) bool {
	return math.IsInf(v, 1)
}

// SowingEstimate breaks down the time to sow a field.
type SowingEstimate struct {
	Total                float64 // s; +Inf when the field cannot be covered.
	Acceleration         float64 // m/s²
	AccelerationTime     float64 // s; +Inf when the tractor cannot accelerate.
	AccelerationDistance float64 // m
	CoverageRate         float64 // m²/s
}

// SowingTime returns the total time in seconds to sow the field: the
// time to work the area at target velocity plus the time to reach it.
func SowingTime(p types.SowingParams) (float64, error) {
	est, err := SowingTimeDetail(p)
	if err != nil {
		return 0, err
	}
	return est.Total, nil
}

// SowingTimeDetail is SowingTime with the acceleration phase broken out.
func SowingTimeDetail(p types.SowingParams) (SowingEstimate, error) {
	if err := p.Validate(); err != nil {
		return SowingEstimate{}, fmt.Errorf("sowing time: %w", err)
	}

	est := SowingEstimate{Acceleration: p.NetForce / p.TractorMass}
	if est.Acceleration <= 0 {
		est.AccelerationTime = math.Inf(1)
	} else {
		est.AccelerationTime = p.TargetVelocity / est.Acceleration
		est.AccelerationDistance = 0.5 * est.Acceleration * est.AccelerationTime * est.AccelerationTime
	}

	est.CoverageRate = p.ImplementWidth * p.TargetVelocity * p.SeedEfficiency
	if est.CoverageRate <= 0 {
		est.Total = math.Inf(1)
		return est, nil
	}

	est.Total = p.FieldArea/est.CoverageRate + est.AccelerationTime
	return est, nil
}
