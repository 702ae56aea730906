package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mecanica/internal/cultivation"
	"github.com/mesh-intelligence/mecanica/internal/report"
	"github.com/mesh-intelligence/mecanica/pkg/types"
)

const (
	sectionSowing     = "sowing"
	sectionCompaction = "compaction"
	sectionGrowth     = "growth"

	growthCurveSamples = 100
)

func newSowingCmd(a *app) *cobra.Command {
	var detail bool
	cmd := &cobra.Command{
		Use:   "sowing",
		Short: "Time to sow a field with a tractor-drawn implement",
		Long: `Sowing estimates the time to cover a field: the area over the effective
coverage rate plus the time the tractor needs to reach target velocity.
A configuration that can never cover the field reports inf.

Example:
  mecanica sowing --field-area 10000 --implement-width 3 --detail`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSowing(detail)
		},
	}
	addSowingFlags(cmd)
	floatFlag(cmd, "tractor-mass", types.DefaultConfig().Sowing.TractorMass, "tractor mass (kg)", sectionSowing)
	cmd.Flags().BoolVar(&detail, "detail", false, "break out the acceleration phase")
	return cmd
}

// addSowingFlags registers the sowing flags other than tractor-mass, which
// harvest shares with the compaction section.
func addSowingFlags(cmd *cobra.Command) {
	def := types.DefaultConfig().Sowing
	floatFlag(cmd, "field-area", def.FieldArea, "field area (m²)", sectionSowing)
	floatFlag(cmd, "implement-width", def.ImplementWidth, "implement working width (m)", sectionSowing)
	floatFlag(cmd, "target-velocity", def.TargetVelocity, "working velocity (m/s)", sectionSowing)
	floatFlag(cmd, "net-force", def.NetForce, "net tractive force (N)", sectionSowing)
	floatFlag(cmd, "seed-efficiency", def.SeedEfficiency, "field efficiency (0..1)", sectionSowing)
}

func (a *app) runSowing(detail bool) error {
	p := a.cfg.Sowing
	if !detail {
		total, err := cultivation.SowingTime(p)
		if err != nil {
			return err
		}
		return a.summary(report.Summary{
			Title: "Sowing time",
			Values: []report.Value{
				{Label: "Total", Value: total, Unit: "s"},
				{Label: "Total hours", Value: total / 3600, Unit: "h"},
			},
		})
	}

	est, err := cultivation.SowingTimeDetail(p)
	if err != nil {
		return err
	}
	var notes []string
	if cultivation.IsUnreachable(est.AccelerationTime) {
		notes = append(notes, "net force does not accelerate the tractor")
	}
	return a.summary(report.Summary{
		Title: "Sowing time",
		Values: []report.Value{
			{Label: "Total", Value: est.Total, Unit: "s"},
			{Label: "Acceleration", Value: est.Acceleration, Unit: "m/s2", Precision: 3},
			{Label: "Acceleration time", Value: est.AccelerationTime, Unit: "s"},
			{Label: "Acceleration distance", Value: est.AccelerationDistance, Unit: "m"},
			{Label: "Coverage rate", Value: est.CoverageRate, Unit: "m2/s"},
		},
		Notes: notes,
	})
}

func newHarvestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Days from the start of sowing to harvest",
		Long: `Harvest chains three models: the sowing time of the field, the soil
compaction caused by the tractor, and logistic crop growth slowed by that
compaction. The biomass curve is charted when a plot directory is set.

--tractor-mass sets the mass in both the sowing and compaction sections.
In config.yaml, compaction.tractor_mass falls back to sowing.tractor_mass
when it is not set.

Example:
  mecanica harvest --tractor-mass 3500 --contact-area 0.8 --plot-dir plots`,
		Args: cobra.NoArgs,
		RunE: a.runHarvest,
	}
	addSowingFlags(cmd)

	comp := types.DefaultConfig().Compaction
	floatFlag(cmd, "tractor-mass", comp.TractorMass, "tractor mass (kg)", sectionSowing, sectionCompaction)
	floatFlag(cmd, "contact-area", comp.ContactArea, "tyre contact area (m²)", sectionCompaction)
	floatFlag(cmd, "threshold-pressure", comp.ThresholdPressure, "pressure above which soil compacts (Pa)", sectionCompaction)
	floatFlag(cmd, "k-compaction", comp.KCompaction, "maximum growth rate reduction (0..1)", sectionCompaction)
	floatFlag(cmd, "gravity", comp.Gravity, "gravitational acceleration (m/s²)", sectionCompaction)

	growth := types.DefaultConfig().Growth
	floatFlag(cmd, "base-rate", growth.BaseRate, "intrinsic growth rate (1/day)", sectionGrowth)
	floatFlag(cmd, "carrying-capacity", growth.CarryingCapacity, "carrying capacity", sectionGrowth)
	floatFlag(cmd, "initial-fraction", growth.InitialFraction, "initial biomass", sectionGrowth)
	floatFlag(cmd, "target-fraction", growth.TargetFraction, "harvest biomass target", sectionGrowth)
	return cmd
}

// harvestCompaction returns the compaction section, taking the tractor
// mass from the sowing section unless the flag or config.yaml sets it.
func (a *app) harvestCompaction() types.CompactionParams {
	c := a.cfg.Compaction
	if !a.v.IsSet(configKey(sectionCompaction, "tractor-mass")) {
		c.TractorMass = a.cfg.Sowing.TractorMass
	}
	return c
}

func (a *app) runHarvest(cmd *cobra.Command, args []string) error {
	est, err := cultivation.EstimateHarvest(a.cfg.Sowing, a.harvestCompaction(), a.cfg.Growth)
	if err != nil {
		return err
	}
	a.log.Debug("harvest estimate",
		"sowing_s", est.Sowing.Total,
		"compaction", est.Compaction,
		"effective_rate", est.Growth.EffectiveRate)

	var notes []string
	if cultivation.IsUnreachable(est.TotalDays) {
		notes = append(notes, "harvest target is never reached")
	}
	if err := a.summary(report.Summary{
		Title: "Sowing to harvest",
		Values: []report.Value{
			{Label: "Operation time", Value: est.OperationHours, Unit: "h"},
			{Label: "Ground pressure", Value: est.GroundPressure, Unit: "Pa", Precision: 1},
			{Label: "Compaction factor", Value: est.Compaction, Precision: 4},
			{Label: "Effective growth rate", Value: est.Growth.EffectiveRate, Unit: "1/day", Precision: 4},
			{Label: "Growth time", Value: est.GrowthDays, Unit: "days"},
			{Label: "Total time", Value: est.TotalDays, Unit: "days"},
		},
		Notes: notes,
	}); err != nil {
		return err
	}

	if !est.Growth.Reachable() || est.GrowthDays <= 0 {
		return nil
	}
	t, fraction := cultivation.GrowthCurve(est.Growth, est.GrowthDays, growthCurveSamples)
	if t == nil {
		return nil
	}
	return a.series(report.Series{
		Name:   "harvest",
		Title:  fmt.Sprintf("Biomass growth (target %.0f%%)", a.cfg.Growth.TargetFraction*100),
		XLabel: "days after sowing",
		X:      t,
		Lines:  []report.Line{{Label: "biomass fraction", Y: fraction}},
	})
}
