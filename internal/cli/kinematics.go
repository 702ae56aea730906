package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mecanica/internal/kinematics"
	"github.com/mesh-intelligence/mecanica/internal/report"
	"github.com/mesh-intelligence/mecanica/pkg/types"
)

const (
	sectionNewton        = "newton"
	sectionDisplacement  = "displacement"
	sectionFinalVelocity = "final_velocity"
	sectionUniform       = "uniform"
	sectionOscillating   = "oscillating"
	sectionSeeder        = "seeder"
	sectionFlow          = "flow"
)

func newNewtonCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Acceleration from force and mass (F = m*a)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := kinematics.Acceleration(a.cfg.Newton)
			if err != nil {
				return err
			}
			return a.summary(report.Summary{
				Title:  "Newton's second law",
				Values: []report.Value{{Label: "Acceleration", Value: acc, Unit: "m/s2"}},
			})
		},
	}
	def := types.DefaultConfig().Newton
	floatFlag(cmd, "force", def.Force, "force (N)", sectionNewton)
	floatFlag(cmd, "mass", def.Mass, "mass (kg)", sectionNewton)
	return cmd
}

func newDisplacementCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "displacement",
		Short: "Distance covered from rest at constant acceleration",
		Long: `Displacement computes a*t²/2, for example a dragster accelerating from
rest at 26.0 m/s² for 5.56 s.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.summary(report.Summary{
				Title: "Displacement from rest",
				Values: []report.Value{
					{Label: "Distance", Value: kinematics.DisplacementFromRest(a.cfg.Displacement), Unit: "m"},
				},
			})
		},
	}
	def := types.DefaultConfig().Displacement
	floatFlag(cmd, "acceleration", def.Acceleration, "acceleration (m/s²)", sectionDisplacement)
	floatFlag(cmd, "time", def.Time, "time (s)", sectionDisplacement)
	return cmd
}

func newFinalVelocityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "final-velocity",
		Short: "Velocity after a constant deceleration",
		Long: `Final-velocity computes v - a*t, for example an aircraft landing at
70.0 m/s and decelerating at 1.50 m/s² for 40.0 s.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.summary(report.Summary{
				Title: "Final velocity",
				Values: []report.Value{
					{Label: "Velocity", Value: kinematics.FinalVelocity(a.cfg.FinalVelocity), Unit: "m/s"},
				},
			})
		},
	}
	def := types.DefaultConfig().FinalVelocity
	floatFlag(cmd, "velocity", def.Velocity, "initial velocity (m/s)", sectionFinalVelocity)
	floatFlag(cmd, "deceleration", def.Deceleration, "deceleration magnitude (m/s²)", sectionFinalVelocity)
	floatFlag(cmd, "time", def.Time, "time (s)", sectionFinalVelocity)
	return cmd
}

func newUniformCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uniform",
		Short: "Motion from rest under a constant force",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := kinematics.Uniform(a.cfg.Uniform)
			if err != nil {
				return err
			}
			return a.reportProfile("uniform", "Uniform acceleration", prof)
		},
	}
	def := types.DefaultConfig().Uniform
	floatFlag(cmd, "force", def.Force, "force (N)", sectionUniform)
	floatFlag(cmd, "mass", def.Mass, "mass (kg)", sectionUniform)
	floatFlag(cmd, "duration", def.Duration, "duration (s)", sectionUniform)
	floatFlag(cmd, "dt", def.Dt, "time step (s)", sectionUniform)
	return cmd
}

func newOscillatingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oscillating",
		Short: "Motion under F(t) = base + amplitude*sin(w*t)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := kinematics.Oscillating(a.cfg.Oscillating)
			if err != nil {
				return err
			}
			return a.reportProfile("oscillating", "Oscillating force", prof)
		},
	}
	def := types.DefaultConfig().Oscillating
	floatFlag(cmd, "mass", def.Mass, "mass (kg)", sectionOscillating)
	floatFlag(cmd, "duration", def.Duration, "duration (s)", sectionOscillating)
	floatFlag(cmd, "dt", def.Dt, "time step (s)", sectionOscillating)
	floatFlag(cmd, "base-force", def.BaseForce, "constant force component (N)", sectionOscillating)
	floatFlag(cmd, "amplitude", def.Amplitude, "oscillation amplitude (N)", sectionOscillating)
	floatFlag(cmd, "angular-frequency", def.AngularFrequency, "angular frequency (rad/s)", sectionOscillating)
	return cmd
}

func newSeederCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seeder",
		Short: "Rice seeder motion under engine force minus resistance",
		Long: `Seeder steps a rice seeder forward from rest, applying Newton's second
law to the engine force minus the soil resistance.

Example:
  mecanica seeder --mass 800 --engine-force 2000 --resistance-force 600`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := kinematics.Seeder(a.cfg.Seeder)
			if err != nil {
				return err
			}
			return a.reportProfile("seeder", "Rice seeder motion", prof)
		},
	}
	def := types.DefaultConfig().Seeder
	floatFlag(cmd, "mass", def.Mass, "mass (kg)", sectionSeeder)
	floatFlag(cmd, "engine-force", def.EngineForce, "engine force (N)", sectionSeeder)
	floatFlag(cmd, "resistance-force", def.ResistanceForce, "resistance force (N)", sectionSeeder)
	floatFlag(cmd, "duration", def.Duration, "duration (s)", sectionSeeder)
	floatFlag(cmd, "dt", def.Dt, "time step (s)", sectionSeeder)
	return cmd
}

// reportProfile prints the profile summary and hands its samples to the
// chart reporters.
func (a *app) reportProfile(name, title string, prof *kinematics.Profile) error {
	if err := a.summary(report.Summary{
		Title: title,
		Values: []report.Value{
			{Label: "Mean acceleration", Value: prof.MeanAcceleration(), Unit: "m/s2"},
			{Label: "Final velocity", Value: prof.FinalVelocity(), Unit: "m/s"},
			{Label: "Distance", Value: prof.Distance(), Unit: "m"},
		},
		Notes: []string{fmt.Sprintf("%d samples", prof.Len())},
	}); err != nil {
		return err
	}
	if prof.Len() == 0 {
		return nil
	}

	var lines []report.Line
	if prof.Force != nil {
		lines = append(lines, report.Line{Label: "force", Unit: "N", Y: prof.Force})
	}
	lines = append(lines,
		report.Line{Label: "acceleration", Unit: "m/s2", Y: prof.Acceleration},
		report.Line{Label: "velocity", Unit: "m/s", Y: prof.Velocity},
		report.Line{Label: "position", Unit: "m", Y: prof.Position},
	)
	return a.series(report.Series{
		Name:   name,
		Title:  title,
		XLabel: "time (s)",
		X:      prof.Time,
		Lines:  lines,
	})
}

func newFlowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Irrigation flow force heuristic (F = m*a over an acceleration range)",
		Long: `Flow evaluates the force the water exerts on a particle across a range of
flow accelerations and reports where it falls inside the optimal band.`,
		Args: cobra.NoArgs,
		RunE: a.runFlow,
	}
	def := types.DefaultConfig().Flow
	floatFlag(cmd, "particle-mass", def.ParticleMass, "particle mass (kg)", sectionFlow)
	floatFlag(cmd, "min-acceleration", def.MinAcceleration, "lowest flow acceleration (m/s²)", sectionFlow)
	floatFlag(cmd, "max-acceleration", def.MaxAcceleration, "highest flow acceleration (m/s²)", sectionFlow)
	intFlag(cmd, "samples", def.Samples, "number of accelerations", sectionFlow)
	floatFlag(cmd, "optimal-min-force", def.OptimalMinForce, "optimal band lower force (N)", sectionFlow)
	floatFlag(cmd, "optimal-max-force", def.OptimalMaxForce, "optimal band upper force (N)", sectionFlow)
	return cmd
}

func (a *app) runFlow(cmd *cobra.Command, args []string) error {
	prof, err := kinematics.Flow(a.cfg.Flow)
	if err != nil {
		return err
	}

	note := "no acceleration keeps the force in the optimal band"
	if lo, hi, ok := prof.OptimalRange(); ok {
		note = fmt.Sprintf("optimal between %.2f and %.2f m/s2 (%d of %d samples)", lo, hi, prof.OptimalCount(), len(prof.Force))
	}
	if err := a.summary(report.Summary{
		Title: "Irrigation flow equilibrium",
		Values: []report.Value{
			{Label: "Optimal band low", Value: prof.BandMin, Unit: "N", Precision: 3},
			{Label: "Optimal band high", Value: prof.BandMax, Unit: "N", Precision: 3},
		},
		Notes: []string{note},
	}); err != nil {
		return err
	}

	return a.series(report.Series{
		Name:    "flow",
		Title:   "Irrigation flow equilibrium (F = m*a)",
		XLabel:  "water acceleration (m/s2)",
		X:       prof.Acceleration,
		Overlay: true,
		Lines: []report.Line{
			{Label: "force", Unit: "N", Y: prof.Force},
			{Label: "optimal low", Unit: "N", Y: constant(len(prof.Force), prof.BandMin)},
			{Label: "optimal high", Unit: "N", Y: constant(len(prof.Force), prof.BandMax)},
		},
	})
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
