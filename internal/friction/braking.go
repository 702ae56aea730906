package friction

import (
	"fmt"

	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// Deceleration is the acceleration kinetic friction imposes on a body
// moving in the positive direction: -muK*g.
func Deceleration(muK, g float64) float64 {
	return -muK * g
}

// StoppingDistance is the distance a body travels from p.V0 to rest under
// kinetic friction alone: v0² / (2*muK*g).
func StoppingDistance(p types.BrakingParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("stopping distance: %w", err)
	}
	return p.V0 * p.V0 / (2 * p.MuK * p.Gravity), nil
}
