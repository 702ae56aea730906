package kinematics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// FlowProfile is the force on an irrigation water particle across a
// range of flow accelerations.
type FlowProfile struct {
	Acceleration []float64
	Force        []float64
	Optimal      []bool // Force within the optimal band.
	BandMin      float64
	BandMax      float64
}

// OptimalCount is the number of samples inside the optimal band.
func (f *FlowProfile) OptimalCount() int {
	n := 0
	for _, ok := range f.Optimal {
		if ok {
			n++
		}
	}
	return n
}

// OptimalRange returns the lowest and highest accelerations whose force is
// in the optimal band. ok is false when no sample is.
func (f *FlowProfile) OptimalRange() (lo, hi float64, ok bool) {
	for i, in := range f.Optimal {
		if !in {
			continue
		}
		if !ok {
			lo, ok = f.Acceleration[i], true
		}
		hi = f.Acceleration[i]
	}
	return lo, hi, ok
}

// Flow evaluates F = m*a for p.Samples accelerations evenly spaced over
// [p.MinAcceleration, p.MaxAcceleration] and flags the samples whose force
// lies in [p.OptimalMinForce, p.OptimalMaxForce].
func Flow(p types.FlowParams) (*FlowProfile, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("flow equilibrium: %w", err)
	}

	accel := floats.Span(make([]float64, p.Samples), p.MinAcceleration, p.MaxAcceleration)
	force := make([]float64, len(accel))
	floats.ScaleTo(force, p.ParticleMass, accel)

	prof := &FlowProfile{
		Acceleration: accel,
		Force:        force,
		Optimal:      make([]bool, len(force)),
		BandMin:      p.OptimalMinForce,
		BandMax:      p.OptimalMaxForce,
	}
	for i, f := range force {
		prof.Optimal[i] = f >= p.OptimalMinForce && f <= p.OptimalMaxForce
	}
	return prof, nil
}
