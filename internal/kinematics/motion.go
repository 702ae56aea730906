package kinematics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// Uniform samples the closed-form motion from rest under a constant force
// on [0, duration] inclusive: v = a*t, x = a*t²/2.
func Uniform(p types.UniformParams) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("uniform motion: %w", err)
	}
	a := p.Force / p.Mass
	t := Arange(0, p.Duration+p.Dt, p.Dt)

	prof := &Profile{
		Time:         t,
		Acceleration: make([]float64, len(t)),
		Velocity:     make([]float64, len(t)),
		Position:     make([]float64, len(t)),
	}
	for i, ti := range t {
		prof.Acceleration[i] = a
		prof.Velocity[i] = a * ti
		prof.Position[i] = 0.5 * a * ti * ti
	}
	return prof, nil
}

// Oscillating integrates the motion under F(t) = base + amp*sin(w*t) on
// [0, duration) with rectangle-rule cumulative sums:
// v = cumsum(a)*dt, x = cumsum(v)*dt.
func Oscillating(p types.OscillatingParams) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("oscillating force: %w", err)
	}
	t := Arange(0, p.Duration, p.Dt)
	n := len(t)

	prof := &Profile{
		Time:         t,
		Force:        make([]float64, n),
		Acceleration: make([]float64, n),
		Velocity:     make([]float64, n),
		Position:     make([]float64, n),
	}
	for i, ti := range t {
		prof.Force[i] = p.BaseForce + p.Amplitude*math.Sin(p.AngularFrequency*ti)
		prof.Acceleration[i] = prof.Force[i] / p.Mass
	}
	if n == 0 {
		return prof, nil
	}

	floats.CumSum(prof.Velocity, prof.Acceleration)
	floats.Scale(p.Dt, prof.Velocity)
	floats.CumSum(prof.Position, prof.Velocity)
	floats.Scale(p.Dt, prof.Position)
	return prof, nil
}

// Seeder steps a rice seeder forward from rest under a constant net force
// (engine minus resistance) on [0, duration] inclusive. The first sample
// is the seeder at rest with zero acceleration; every later step applies
// v[i] = v[i-1] + a*dt and x[i] = x[i-1] + v[i-1]*dt + a*dt²/2.
func Seeder(p types.SeederParams) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("seeder motion: %w", err)
	}
	t := Arange(0, p.Duration+p.Dt, p.Dt)
	n := len(t)

	prof := &Profile{
		Time:         t,
		Force:        make([]float64, n),
		Acceleration: make([]float64, n),
		Velocity:     make([]float64, n),
		Position:     make([]float64, n),
	}
	net := p.EngineForce - p.ResistanceForce
	a := net / p.Mass
	for i := 1; i < n; i++ {
		prof.Force[i] = net
		prof.Acceleration[i] = a
		prof.Velocity[i] = prof.Velocity[i-1] + a*p.Dt
		prof.Position[i] = prof.Position[i-1] + prof.Velocity[i-1]*p.Dt + 0.5*a*p.Dt*p.Dt
	}
	return prof, nil
}
