// Package friction models bodies decelerating under constant kinetic
// friction on a horizontal surface.
package friction

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// StopThreshold is the speed below which a sliding body counts as stopped.
const StopThreshold = 1e-4

// State is one sample of a slide.
type State struct {
	T float64 // s
	V float64 // m/s
	X float64 // m
	A float64 // m/s²
}

// Trajectory is the ordered sequence of states produced by Simulate.
type Trajectory struct {
	States []State
}

// Times returns the time column.
func (tr *Trajectory) Times() []float64 { return tr.column(func(s State) float64 { return s.T }) }

// Velocities returns the velocity column.
func (tr *Trajectory) Velocities() []float64 { return tr.column(func(s State) float64 { return s.V }) }

// Positions returns the position column.
func (tr *Trajectory) Positions() []float64 { return tr.column(func(s State) float64 { return s.X }) }

// Accelerations returns the acceleration column.
func (tr *Trajectory) Accelerations() []float64 {
	return tr.column(func(s State) float64 { return s.A })
}

func (tr *Trajectory) column(f func(State) float64) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = f(s)
	}
	return out
}

// Final returns the last state.
func (tr *Trajectory) Final() State {
	return tr.States[len(tr.States)-1]
}

// FinalTime is the time of the last sample.
func (tr *Trajectory) FinalTime() float64 { return tr.Final().T }

// Distance is the position of the last sample.
func (tr *Trajectory) Distance() float64 { return tr.Final().X }

// Stopped reports whether the slide ended because the body came to rest
// rather than because the time bound was reached.
func (tr *Trajectory) Stopped() bool {
	return math.Abs(tr.Final().V) <= StopThreshold
}

// Simulate advances a body sliding at p.V0 until friction brings it to
// rest or p.MaxT elapses. Friction always opposes the initial direction
// of motion, and velocity is clamped to zero instead of changing sign.
//
// Position uses the pre-update velocity: x' = x + v*dt + a*dt²/2.
// The trajectory never holds more than types.MaxSamples+1 states.
func Simulate(p types.SlideParams) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("simulate slide: %w", err)
	}

	normal := p.Mass * p.Gravity
	a := -(p.MuK * normal) / p.Mass
	if p.V0 < 0 {
		a = -a
	}

	tr := &Trajectory{
		States: []State{{T: 0, V: p.V0, X: 0, A: a}},
	}

	t, v, x := 0.0, p.V0, 0.0
	for t < p.MaxT && math.Abs(v) > StopThreshold && len(tr.States) <= types.MaxSamples {
		t += p.Dt
		vNew := v + a*p.Dt
		if vNew*p.V0 < 0 {
			vNew = 0
		}
		x += v*p.Dt + 0.5*a*p.Dt*p.Dt
		v = vNew
		tr.States = append(tr.States, State{T: t, V: v, X: x, A: a})
	}
	return tr, nil
}
