package kinematics

import (
	"fmt"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// Acceleration applies Newton's second law, a = F/m.
func Acceleration(p types.NewtonParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("newton: %w", err)
	}
	return p.Force / p.Mass, nil
}

// DisplacementFromRest is the distance covered from rest at constant
// acceleration: a*t²/2.
func DisplacementFromRest(p types.DisplacementParams) float64 {
	return 0.5 * p.Acceleration * p.Time * p.Time
}

// FinalVelocity is the velocity after decelerating at p.Deceleration
// (a positive magnitude) for p.Time: v - a*t.
func FinalVelocity(p types.FinalVelocityParams) float64 {
	return p.Velocity + (-p.Deceleration)*p.Time
}
