package types

// Config collects the parameters of every calculator. It is the shape of
// config.yaml; each section maps to one CLI command.
type Config struct {
	PlotDir       string              `json:"plot_dir,omitempty" yaml:"plot_dir,omitempty" mapstructure:"plot_dir"`
	Slide         SlideParams         `json:"slide" yaml:"slide" mapstructure:"slide"`
	Braking       BrakingParams       `json:"braking" yaml:"braking" mapstructure:"braking"`
	Newton        NewtonParams        `json:"newton" yaml:"newton" mapstructure:"newton"`
	Displacement  DisplacementParams  `json:"displacement" yaml:"displacement" mapstructure:"displacement"`
	FinalVelocity FinalVelocityParams `json:"final_velocity" yaml:"final_velocity" mapstructure:"final_velocity"`
	Uniform       UniformParams       `json:"uniform" yaml:"uniform" mapstructure:"uniform"`
	Oscillating   OscillatingParams   `json:"oscillating" yaml:"oscillating" mapstructure:"oscillating"`
	Seeder        SeederParams        `json:"seeder" yaml:"seeder" mapstructure:"seeder"`
	Flow          FlowParams          `json:"flow" yaml:"flow" mapstructure:"flow"`
	Sowing        SowingParams        `json:"sowing" yaml:"sowing" mapstructure:"sowing"`
	Compaction    CompactionParams    `json:"compaction" yaml:"compaction" mapstructure:"compaction"`
	Growth        GrowthParams        `json:"growth" yaml:"growth" mapstructure:"growth"`
}

// DefaultConfig returns the worked examples: a crate sliding on a floor,
// a dragster, a landing aircraft, a rice seeder and a one hectare paddy.
func DefaultConfig() Config {
	return Config{
		Slide: SlideParams{
			V0:      5.0,
			MuK:     0.25,
			Mass:    50.0,
			Dt:      0.01,
			Gravity: StandardGravity,
			MaxT:    30.0,
		},
		Braking: BrakingParams{
			V0:      5.0,
			MuK:     0.3,
			Gravity: StandardGravity,
		},
		Newton: NewtonParams{
			Force: 20,
			Mass:  5,
		},
		Displacement: DisplacementParams{
			Acceleration: 26.0,
			Time:         5.56,
		},
		FinalVelocity: FinalVelocityParams{
			Velocity:     70.0,
			Deceleration: 1.50,
			Time:         40.0,
		},
		Uniform: UniformParams{
			Force:    10,
			Mass:     2,
			Duration: 5,
			Dt:       0.1,
		},
		Oscillating: OscillatingParams{
			Mass:             2,
			Duration:         10,
			Dt:               0.1,
			BaseForce:        10,
			Amplitude:        2,
			AngularFrequency: 1,
		},
		Seeder: SeederParams{
			Mass:            800,
			EngineForce:     2000,
			ResistanceForce: 600,
			Duration:        10,
			Dt:              0.5,
		},
		Flow: FlowParams{
			ParticleMass:    0.002,
			MinAcceleration: 0.1,
			MaxAcceleration: 5,
			Samples:         50,
			OptimalMinForce: 0.004,
			OptimalMaxForce: 0.007,
		},
		Sowing: SowingParams{
			FieldArea:      10000,
			ImplementWidth: 3.0,
			TargetVelocity: 1.5,
			TractorMass:    3500,
			NetForce:       2000,
			SeedEfficiency: 0.9,
		},
		Compaction: CompactionParams{
			TractorMass:       3500,
			ContactArea:       0.8,
			ThresholdPressure: DefaultThresholdPressure,
			KCompaction:       DefaultKCompaction,
			Gravity:           StandardGravity,
		},
		Growth: GrowthParams{
			BaseRate:         0.08,
			CarryingCapacity: 1.0,
			InitialFraction:  0.01,
			TargetFraction:   DefaultTargetFraction,
		},
	}
}
