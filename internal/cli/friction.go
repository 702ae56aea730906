package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mecanica/internal/friction"
	"github.com/mesh-intelligence/mecanica/internal/report"
	"github.com/mesh-intelligence/mecanica/pkg/types"
)

const (
	sectionSlide   = "slide"
	sectionBraking = "braking"
)

func newSlideCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slide",
		Short: "Simulate a body sliding to rest under kinetic friction",
		Long: `Slide steps a body forward at a fixed time step while constant kinetic
friction decelerates it, until it stops or the time bound is reached.

Example:
  mecanica slide
  mecanica slide --v0 6 --mu-k 0.3 --mass 100 --plot-dir plots`,
		Args: cobra.NoArgs,
		RunE: a.runSlide,
	}
	def := types.DefaultConfig().Slide
	floatFlag(cmd, "v0", def.V0, "initial velocity (m/s)", sectionSlide)
	floatFlag(cmd, "mu-k", def.MuK, "kinetic friction coefficient", sectionSlide)
	floatFlag(cmd, "mass", def.Mass, "mass (kg)", sectionSlide)
	floatFlag(cmd, "dt", def.Dt, "time step (s)", sectionSlide)
	floatFlag(cmd, "gravity", def.Gravity, "gravitational acceleration (m/s²)", sectionSlide)
	floatFlag(cmd, "max-t", def.MaxT, "time bound (s)", sectionSlide)
	return cmd
}

func (a *app) runSlide(cmd *cobra.Command, args []string) error {
	tr, err := friction.Simulate(a.cfg.Slide)
	if err != nil {
		return err
	}

	outcome := "came to rest"
	if !tr.Stopped() {
		outcome = "time bound reached"
	}
	final := tr.Final()
	if err := a.summary(report.Summary{
		Title: "Kinetic friction slide",
		Values: []report.Value{
			{Label: "Final time", Value: final.T, Unit: "s"},
			{Label: "Distance", Value: final.X, Unit: "m"},
			{Label: "Final velocity", Value: final.V, Unit: "m/s", Precision: 4},
			{Label: "Acceleration", Value: final.A, Unit: "m/s2", Precision: 3},
		},
		Notes: []string{fmt.Sprintf("%d samples, %s", len(tr.States), outcome)},
	}); err != nil {
		return err
	}

	return a.series(report.Series{
		Name:   "slide",
		Title:  "Kinetic friction slide",
		XLabel: "time (s)",
		X:      tr.Times(),
		Lines: []report.Line{
			{Label: "velocity", Unit: "m/s", Y: tr.Velocities()},
			{Label: "position", Unit: "m", Y: tr.Positions()},
		},
	})
}

func newBrakingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "braking",
		Short: "Friction deceleration and stopping distance",
		Long: `Braking computes the constant deceleration kinetic friction imposes on a
horizontal surface and the closed-form distance to stop from v0.

Example:
  mecanica braking --v0 5 --mu-k 0.3`,
		Args: cobra.NoArgs,
		RunE: a.runBraking,
	}
	def := types.DefaultConfig().Braking
	floatFlag(cmd, "v0", def.V0, "initial velocity (m/s)", sectionBraking)
	floatFlag(cmd, "mu-k", def.MuK, "kinetic friction coefficient", sectionBraking)
	floatFlag(cmd, "gravity", def.Gravity, "gravitational acceleration (m/s²)", sectionBraking)
	return cmd
}

func (a *app) runBraking(cmd *cobra.Command, args []string) error {
	p := a.cfg.Braking
	d, err := friction.StoppingDistance(p)
	if err != nil {
		return err
	}
	return a.summary(report.Summary{
		Title: "Kinetic friction braking",
		Values: []report.Value{
			{Label: "Acceleration", Value: friction.Deceleration(p.MuK, p.Gravity), Unit: "m/s2", Precision: 3},
			{Label: "Stopping distance", Value: d, Unit: "m", Precision: 3},
		},
	})
}
