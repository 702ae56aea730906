// Package kinematics implements Newton's second law and the constant-step
// motion profiles built on it: uniform acceleration, an oscillating force,
// a rice seeder pulled against a resistance, and the irrigation flow
// force heuristic.
package kinematics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// Profile holds equally long, time-aligned samples of a motion.
// Force is nil for profiles that do not track it.
type Profile struct {
	Time         []float64
	Force        []float64
	Acceleration []float64
	Velocity     []float64
	Position     []float64
}

// Len is the number of samples.
func (p *Profile) Len() int { return len(p.Time) }

// MeanAcceleration is the arithmetic mean of the acceleration samples.
func (p *Profile) MeanAcceleration() float64 {
	if len(p.Acceleration) == 0 {
		return 0
	}
	return stat.Mean(p.Acceleration, nil)
}

// FinalVelocity is the last velocity sample, or 0 for an empty profile.
func (p *Profile) FinalVelocity() float64 { return last(p.Velocity) }

// Distance is the last position sample, or 0 for an empty profile.
func (p *Profile) Distance() float64 { return last(p.Position) }

// PeakVelocity is the largest velocity sample.
func (p *Profile) PeakVelocity() float64 {
	if len(p.Velocity) == 0 {
		return 0
	}
	return floats.Max(p.Velocity)
}

func last(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Arange returns start, start+step, ... up to but excluding stop, with
// ceil((stop-start)/step) elements. Each value is start + i*step, so no
// rounding error accumulates along the grid. A grid that is empty, not
// finite or longer than types.MaxSamples yields an empty slice.
func Arange(start, stop, step float64) []float64 {
	if !(step > 0) || !(stop > start) {
		return []float64{}
	}
	count := math.Ceil((stop - start) / step)
	if math.IsNaN(count) || count > types.MaxSamples {
		return []float64{}
	}
	n := int(count)
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
