package types

import "math"

// NewtonParams is a force applied to a mass.
type NewtonParams struct {
	Force float64 `json:"force" yaml:"force" mapstructure:"force"` // N
	Mass  float64 `json:"mass" yaml:"mass" mapstructure:"mass"`    // kg
}

// Validate checks the mass.
func (p NewtonParams) Validate() error {
	if p.Mass <= 0 {
		return ErrMassNotPositive
	}
	return nil
}

// DisplacementParams is a constant acceleration from rest held for a time.
type DisplacementParams struct {
	Acceleration float64 `json:"acceleration" yaml:"acceleration" mapstructure:"acceleration"`
	Time         float64 `json:"time" yaml:"time" mapstructure:"time"`
}

// FinalVelocityParams is a body decelerating at a constant rate.
type FinalVelocityParams struct {
	Velocity     float64 `json:"velocity" yaml:"velocity" mapstructure:"velocity"`
	Deceleration float64 `json:"deceleration" yaml:"deceleration" mapstructure:"deceleration"`
	Time         float64 `json:"time" yaml:"time" mapstructure:"time"`
}

// UniformParams is a constant force sampled over a duration.
type UniformParams struct {
	Force    float64 `json:"force" yaml:"force" mapstructure:"force"`
	Mass     float64 `json:"mass" yaml:"mass" mapstructure:"mass"`
	Duration float64 `json:"duration" yaml:"duration" mapstructure:"duration"`
	Dt       float64 `json:"dt" yaml:"dt" mapstructure:"dt"`
}

// Validate checks mass and time grid.
func (p UniformParams) Validate() error {
	if p.Mass <= 0 {
		return ErrMassNotPositive
	}
	return validateGrid(p.Duration, p.Dt)
}

// OscillatingParams is a force F(t) = BaseForce + Amplitude*sin(AngularFrequency*t).
type OscillatingParams struct {
	Mass             float64 `json:"mass" yaml:"mass" mapstructure:"mass"`
	Duration         float64 `json:"duration" yaml:"duration" mapstructure:"duration"`
	Dt               float64 `json:"dt" yaml:"dt" mapstructure:"dt"`
	BaseForce        float64 `json:"base_force" yaml:"base_force" mapstructure:"base_force"`
	Amplitude        float64 `json:"amplitude" yaml:"amplitude" mapstructure:"amplitude"`
	AngularFrequency float64 `json:"angular_frequency" yaml:"angular_frequency" mapstructure:"angular_frequency"`
}

// Validate checks mass and time grid.
func (p OscillatingParams) Validate() error {
	if p.Mass <= 0 {
		return ErrMassNotPositive
	}
	return validateGrid(p.Duration, p.Dt)
}

// SeederParams is a rice seeder pulled by an engine against a resistance.
type SeederParams struct {
	Mass            float64 `json:"mass" yaml:"mass" mapstructure:"mass"`
	EngineForce     float64 `json:"engine_force" yaml:"engine_force" mapstructure:"engine_force"`
	ResistanceForce float64 `json:"resistance_force" yaml:"resistance_force" mapstructure:"resistance_force"`
	Duration        float64 `json:"duration" yaml:"duration" mapstructure:"duration"`
	Dt              float64 `json:"dt" yaml:"dt" mapstructure:"dt"`
}

// Validate checks mass and time grid.
func (p SeederParams) Validate() error {
	if p.Mass <= 0 {
		return ErrMassNotPositive
	}
	return validateGrid(p.Duration, p.Dt)
}

// FlowParams is the irrigation flow heuristic: the force water exerts on a
// particle across a range of accelerations, and the band considered optimal.
type FlowParams struct {
	ParticleMass    float64 `json:"particle_mass" yaml:"particle_mass" mapstructure:"particle_mass"`
	MinAcceleration float64 `json:"min_acceleration" yaml:"min_acceleration" mapstructure:"min_acceleration"`
	MaxAcceleration float64 `json:"max_acceleration" yaml:"max_acceleration" mapstructure:"max_acceleration"`
	Samples         int     `json:"samples" yaml:"samples" mapstructure:"samples"`
	OptimalMinForce float64 `json:"optimal_min_force" yaml:"optimal_min_force" mapstructure:"optimal_min_force"`
	OptimalMaxForce float64 `json:"optimal_max_force" yaml:"optimal_max_force" mapstructure:"optimal_max_force"`
}

// Validate checks mass, sample count and range ordering.
func (p FlowParams) Validate() error {
	switch {
	case p.ParticleMass <= 0:
		return ErrMassNotPositive
	case p.Samples < 2:
		return ErrSamplesTooFew
	case p.Samples > MaxSamples:
		return ErrTooManySamples
	case !finite(p.MinAcceleration, p.MaxAcceleration):
		return ErrNotFinite
	case p.MinAcceleration > p.MaxAcceleration, p.OptimalMinForce > p.OptimalMaxForce:
		return ErrRangeInverted
	}
	return nil
}

func validateGrid(duration, dt float64) error {
	switch {
	case !finite(duration, dt):
		return ErrNotFinite
	case dt <= 0:
		return ErrStepNotPositive
	case duration < 0:
		return ErrDurationNegative
	case (duration+dt)/dt > MaxSamples:
		return ErrTooManySamples
	}
	return nil
}

// finite reports whether every value is neither NaN nor infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
