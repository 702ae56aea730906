package types

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is wrapped by every parameter validation error, so
// callers can test for the whole class with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Parameter validation errors.
var (
	ErrMassNotPositive     = invalid("mass must be positive")
	ErrFrictionNotPositive = invalid("friction coefficient must be positive")
	ErrGravityNotPositive  = invalid("gravity must be positive")
	ErrStepNotPositive     = invalid("time step must be positive")
	ErrDurationNegative    = invalid("duration must not be negative")
	ErrAreaNotPositive     = invalid("area must be positive")
	ErrWidthNotPositive    = invalid("implement width must be positive")
	ErrCapacityNotPositive = invalid("carrying capacity must be positive")
	ErrFractionNotPositive = invalid("target fraction must be positive")
	ErrSamplesTooFew       = invalid("at least two samples are required")
	ErrRangeInverted       = invalid("range minimum exceeds maximum")
	ErrNotFinite           = invalid("value must be finite")
	ErrTooManySamples      = invalid("too many samples")
)

// MaxSamples bounds the length of every generated time grid or sequence.
const MaxSamples = 10_000_000

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, msg)
}
