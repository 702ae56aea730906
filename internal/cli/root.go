// Package cli implements the mecanica command-line interface: one
// command per calculator, fed from flags and config.yaml and reporting
// through internal/report.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/mecanica/internal/paths"
	"github.com/mesh-intelligence/mecanica/internal/report"
	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	plotDir   string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by the commands of one root command.
type app struct {
	flags  rootFlags
	v      *viper.Viper
	cfg    types.Config
	log    *slog.Logger
	run    *report.Run
	plots  *report.PlotReporter
	stdout io.Writer
}

// NewRootCmd creates the top-level "mecanica" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "mecanica",
		Short: "Classical mechanics and crop growth calculators",
		Long: `Mecanica runs small numerical models: Newton's second law, constant
and oscillating force motion, kinetic friction, and a sowing-to-harvest
estimate that couples tractor dynamics with logistic crop growth.

Parameters come from command flags, then config.yaml, then built-in
examples. Charts are written when a plot directory is configured.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/mecanica)")
	root.PersistentFlags().StringVar(&a.flags.plotDir, "plot-dir", "", "write PNG charts to this directory")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newSlideCmd(a))
	root.AddCommand(newBrakingCmd(a))
	root.AddCommand(newNewtonCmd(a))
	root.AddCommand(newDisplacementCmd(a))
	root.AddCommand(newFinalVelocityCmd(a))
	root.AddCommand(newUniformCmd(a))
	root.AddCommand(newOscillatingCmd(a))
	root.AddCommand(newSeederCmd(a))
	root.AddCommand(newFlowCmd(a))
	root.AddCommand(newSowingCmd(a))
	root.AddCommand(newHarvestCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup resolves the config directory, loads config.yaml with the
// command's flags bound over it, and wires the reporters.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.stdout = cmd.OutOrStdout()

	// version needs no configuration.
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.v, err = loadConfig(configDir)
	if err != nil {
		return systemError(err)
	}
	a.log.Debug("config loaded", "dir", configDir, "file", a.v.ConfigFileUsed())

	if err := bindFlags(a.v, cmd); err != nil {
		return systemError(err)
	}
	a.cfg, err = decodeConfig(a.v)
	if err != nil {
		return err
	}

	plotDir, err := paths.ResolvePlotDir(a.flags.plotDir, a.cfg.PlotDir)
	if err != nil {
		return systemError(fmt.Errorf("resolve plot dir: %w", err))
	}
	return a.wireReporters(plotDir)
}

func (a *app) wireReporters(plotDir string) error {
	var out report.Multi
	if a.flags.jsonMode {
		out = append(out, report.NewJSONReporter(a.stdout))
	} else {
		out = append(out, report.NewTextReporter(a.stdout))
	}
	if plotDir != "" {
		a.plots = report.NewPlotReporter(plotDir)
		out = append(out, a.plots)
	}

	run, err := report.NewRun(out)
	if err != nil {
		return systemError(err)
	}
	a.run = run
	a.log.Debug("reporters wired", "run", run.ID, "json", a.flags.jsonMode, "plot_dir", plotDir)
	return nil
}

// summary reports s and wraps any failure as a system error.
func (a *app) summary(s report.Summary) error {
	if err := a.run.Summary(s); err != nil {
		return systemError(fmt.Errorf("report %s: %w", s.Title, err))
	}
	return nil
}

// series reports s and logs the charts written, if any.
func (a *app) series(s report.Series) error {
	if err := a.run.Series(s); err != nil {
		return systemError(fmt.Errorf("report %s: %w", s.Name, err))
	}
	if a.plots != nil {
		a.log.Debug("charts written", "series", s.Name, "files", a.plots.Files())
	}
	return nil
}

// sysError marks failures of the environment (files, directories) rather
// than of the user's input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemError(err error) error {
	if err == nil {
		return nil
	}
	return &sysError{err: err}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
