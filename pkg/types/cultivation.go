package types

// SowingParams describes a tractor and seeder working a field.
type SowingParams struct {
	FieldArea      float64 `json:"field_area" yaml:"field_area" mapstructure:"field_area"`                // m²
	ImplementWidth float64 `json:"implement_width" yaml:"implement_width" mapstructure:"implement_width"` // m
	TargetVelocity float64 `json:"target_velocity" yaml:"target_velocity" mapstructure:"target_velocity"` // m/s
	TractorMass    float64 `json:"tractor_mass" yaml:"tractor_mass" mapstructure:"tractor_mass"`          // kg
	NetForce       float64 `json:"net_force" yaml:"net_force" mapstructure:"net_force"`                   // N
	SeedEfficiency float64 `json:"seed_efficiency" yaml:"seed_efficiency" mapstructure:"seed_efficiency"` // 0..1
}

// Validate checks the geometry and mass. A non-positive net force,
// velocity or efficiency is not an error: it makes the operation
// unreachable, which the calculator reports as an infinite time.
func (p SowingParams) Validate() error {
	switch {
	case p.TractorMass <= 0:
		return ErrMassNotPositive
	case p.FieldArea <= 0:
		return ErrAreaNotPositive
	case p.ImplementWidth <= 0:
		return ErrWidthNotPositive
	}
	return nil
}

// CompactionParams describes the load a tractor puts on the soil.
type CompactionParams struct {
	TractorMass       float64 `json:"tractor_mass" yaml:"tractor_mass" mapstructure:"tractor_mass"`
	ContactArea       float64 `json:"contact_area" yaml:"contact_area" mapstructure:"contact_area"`
	ThresholdPressure float64 `json:"threshold_pressure" yaml:"threshold_pressure" mapstructure:"threshold_pressure"`
	KCompaction       float64 `json:"k_compaction" yaml:"k_compaction" mapstructure:"k_compaction"`
	Gravity           float64 `json:"gravity" yaml:"gravity" mapstructure:"gravity"`
}

// Default compaction heuristic constants.
const (
	DefaultThresholdPressure = 10000.0 // Pa
	DefaultKCompaction       = 0.5
)

// GrowthParams configures the logistic crop growth model.
type GrowthParams struct {
	BaseRate         float64 `json:"base_rate" yaml:"base_rate" mapstructure:"base_rate"` // per day
	CarryingCapacity float64 `json:"carrying_capacity" yaml:"carrying_capacity" mapstructure:"carrying_capacity"`
	InitialFraction  float64 `json:"initial_fraction" yaml:"initial_fraction" mapstructure:"initial_fraction"`
	CompactionEffect float64 `json:"compaction_effect" yaml:"compaction_effect" mapstructure:"compaction_effect"`
	TargetFraction   float64 `json:"target_fraction" yaml:"target_fraction" mapstructure:"target_fraction"`
}

// DefaultTargetFraction is the share of carrying capacity considered ready for harvest.
const DefaultTargetFraction = 0.9

// Validate checks the parameters the closed form divides by. A
// non-positive effective rate is reported as an unreachable target.
func (p GrowthParams) Validate() error {
	switch {
	case p.CarryingCapacity <= 0:
		return ErrCapacityNotPositive
	case p.TargetFraction <= 0:
		return ErrFractionNotPositive
	}
	return nil
}
