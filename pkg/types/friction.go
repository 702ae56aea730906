package types

// StandardGravity is the gravitational acceleration used by default, in m/s².
const StandardGravity = 9.81

// SlideParams configures the kinetic-friction slide simulation.
type SlideParams struct {
	V0      float64 `json:"v0" yaml:"v0" mapstructure:"v0"`                // Initial velocity (m/s).
	MuK     float64 `json:"mu_k" yaml:"mu_k" mapstructure:"mu_k"`          // Kinetic friction coefficient.
	Mass    float64 `json:"mass" yaml:"mass" mapstructure:"mass"`          // Body mass (kg).
	Dt      float64 `json:"dt" yaml:"dt" mapstructure:"dt"`                // Time step (s).
	Gravity float64 `json:"gravity" yaml:"gravity" mapstructure:"gravity"` // Gravitational acceleration (m/s²).
	MaxT    float64 `json:"max_t" yaml:"max_t" mapstructure:"max_t"`       // Simulated time bound (s).
}

// Validate checks that the slide can be simulated in at most MaxSamples
// steps.
func (p SlideParams) Validate() error {
	switch {
	case !finite(p.V0, p.MuK, p.Mass, p.Dt, p.Gravity, p.MaxT):
		return ErrNotFinite
	case p.Mass <= 0:
		return ErrMassNotPositive
	case p.MuK <= 0:
		return ErrFrictionNotPositive
	case p.Dt <= 0:
		return ErrStepNotPositive
	case p.Gravity <= 0:
		return ErrGravityNotPositive
	case p.MaxT < 0:
		return ErrDurationNegative
	case p.MaxT/p.Dt > MaxSamples:
		return ErrTooManySamples
	}
	return nil
}

// BrakingParams configures the closed-form stopping distance.
type BrakingParams struct {
	V0      float64 `json:"v0" yaml:"v0" mapstructure:"v0"`
	MuK     float64 `json:"mu_k" yaml:"mu_k" mapstructure:"mu_k"`
	Gravity float64 `json:"gravity" yaml:"gravity" mapstructure:"gravity"`
}

// Validate checks the friction coefficient. Gravity is not checked here;
// a zero gravity yields an infinite distance rather than an error.
func (p BrakingParams) Validate() error {
	if p.MuK <= 0 {
		return ErrFrictionNotPositive
	}
	return nil
}
