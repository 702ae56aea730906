package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mecanica/internal/paths"
	"github.com/mesh-intelligence/mecanica/pkg/types"
)

// execute runs the root command with args against configDir and returns
// what it wrote to stdout.
func execute(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvPlotDir, "")

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--config-dir", configDir))
	err := root.Execute()
	return stdout.String(), err
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mecanica v")
	assert.Contains(t, out, modulePath)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	out, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to")

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# mecanica configuration"))
	assert.Contains(t, string(data), "slide:")
	assert.Contains(t, string(data), "mu_k: 0.25")
	assert.NotContains(t, string(data), "plot_dir")

	t.Run("second run leaves the file alone", func(t *testing.T) {
		writeConfig(t, dir, "newton:\n  force: 30\n")
		out, err := execute(t, dir, "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration already exists at")

		data, err := os.ReadFile(filepath.Join(dir, configFileExt))
		require.NoError(t, err)
		assert.Equal(t, "newton:\n  force: 30\n", string(data))
	})
}

func TestInitConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "init")
	require.NoError(t, err)

	out, err := execute(t, dir, "newton")
	require.NoError(t, err)
	assert.Contains(t, out, "Acceleration: 4.00 m/s2")
}

func TestParameterPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		want   string
	}{
		{
			name: "built-in example",
			args: []string{"newton"},
			want: "Acceleration: 4.00 m/s2",
		},
		{
			name:   "config overrides example",
			config: "newton:\n  force: 30\n",
			args:   []string{"newton"},
			want:   "Acceleration: 6.00 m/s2",
		},
		{
			name:   "missing key falls back to example",
			config: "newton:\n  mass: 10\n",
			args:   []string{"newton"},
			want:   "Acceleration: 2.00 m/s2",
		},
		{
			name:   "flag overrides config",
			config: "newton:\n  force: 30\n",
			args:   []string{"newton", "--force", "10"},
			want:   "Acceleration: 2.00 m/s2",
		},
		{
			name:   "other sections are ignored",
			config: "slide:\n  mass: 1\n",
			args:   []string{"newton"},
			want:   "Acceleration: 4.00 m/s2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				writeConfig(t, dir, tt.config)
			}
			out, err := execute(t, dir, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCommandOutput(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"braking"}, []string{"Acceleration: -2.943 m/s2", "Stopping distance: 4.247 m"}},
		{[]string{"displacement"}, []string{"Distance: 401.88 m"}},
		{[]string{"final-velocity"}, []string{"Velocity: 10.00 m/s"}},
		{[]string{"uniform"}, []string{"Uniform acceleration", "Mean acceleration: 5.00 m/s2"}},
		{[]string{"oscillating"}, []string{"Oscillating force", "Distance:"}},
		{[]string{"seeder"}, []string{"Rice seeder motion", "Final velocity:"}},
		{[]string{"slide"}, []string{"Kinetic friction slide", "came to rest"}},
		{[]string{"flow"}, []string{"Optimal band low: 0.004 N", "optimal between"}},
		{[]string{"sowing"}, []string{"Sowing time", "Total hours:"}},
		{[]string{"sowing", "--detail"}, []string{"Coverage rate: 4.05 m2/s"}},
		{[]string{"harvest"}, []string{"Sowing to harvest", "Ground pressure: 42918", "Total time:"}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, t.TempDir(), tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestUnreachableRendersInf(t *testing.T) {
	t.Run("sowing without net force", func(t *testing.T) {
		out, err := execute(t, t.TempDir(), "sowing", "--net-force", "0", "--detail")
		require.NoError(t, err)
		assert.Contains(t, out, "Acceleration time: inf s")
		assert.Contains(t, out, "Total: inf s")
		assert.Contains(t, out, "net force does not accelerate the tractor")
	})

	t.Run("harvest with full compaction", func(t *testing.T) {
		dir := t.TempDir()
		plots := filepath.Join(dir, "plots")
		out, err := execute(t, dir, "harvest", "--k-compaction", "1", "--contact-area", "0.001", "--plot-dir", plots)
		require.NoError(t, err)
		assert.Contains(t, out, "Total time: inf days")
		assert.Contains(t, out, "harvest target is never reached")

		files, err := filepath.Glob(filepath.Join(plots, "*.png"))
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestHarvestTractorMass(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		want   string
	}{
		{
			name: "flag feeds compaction",
			args: []string{"harvest", "--tractor-mass", "1000"},
			want: "Ground pressure: 12262.5 Pa",
		},
		{
			name:   "sowing mass in config feeds compaction",
			config: "sowing:\n  tractor_mass: 1000\n",
			args:   []string{"harvest"},
			want:   "Ground pressure: 12262.5 Pa",
		},
		{
			name:   "compaction mass in config wins",
			config: "sowing:\n  tractor_mass: 1000\ncompaction:\n  tractor_mass: 2000\n",
			args:   []string{"harvest"},
			want:   "Ground pressure: 24525.0 Pa",
		},
		{
			name:   "flag overrides both sections",
			config: "sowing:\n  tractor_mass: 1000\ncompaction:\n  tractor_mass: 2000\n",
			args:   []string{"harvest", "--tractor-mass", "1000"},
			want:   "Ground pressure: 12262.5 Pa",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				writeConfig(t, dir, tt.config)
			}
			out, err := execute(t, dir, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestJSONOutput(t *testing.T) {
	out, err := execute(t, t.TempDir(), "slide", "--json")
	require.NoError(t, err)

	var kinds []string
	var runIDs []string
	scanner := bufio.NewScanner(strings.NewReader(out))
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<24)
	for scanner.Scan() {
		var doc map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &doc))
		kinds = append(kinds, doc["kind"].(string))
		runIDs = append(runIDs, doc["run_id"].(string))
	}
	require.NoError(t, scanner.Err())

	assert.Equal(t, []string{"summary", "series"}, kinds)
	require.Len(t, runIDs, 2)
	assert.NotEmpty(t, runIDs[0])
	assert.Equal(t, runIDs[0], runIDs[1])
}

func TestJSONOutputEncodesInf(t *testing.T) {
	out, err := execute(t, t.TempDir(), "sowing", "--seed-efficiency", "0", "--json")
	require.NoError(t, err)

	var doc struct {
		Values []struct {
			Label string `json:"label"`
			Value any    `json:"value"`
		} `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.NotEmpty(t, doc.Values)
	assert.Equal(t, "Total", doc.Values[0].Label)
	assert.Equal(t, "inf", doc.Values[0].Value)
}

func TestPlotDir(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		dir := t.TempDir()
		plots := filepath.Join(dir, "charts")
		_, err := execute(t, dir, "flow", "--plot-dir", plots)
		require.NoError(t, err)

		files, err := filepath.Glob(filepath.Join(plots, "*-flow.png"))
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("config", func(t *testing.T) {
		dir := t.TempDir()
		plots := filepath.Join(dir, "charts")
		writeConfig(t, dir, "plot_dir: "+plots+"\n")
		_, err := execute(t, dir, "uniform")
		require.NoError(t, err)

		files, err := filepath.Glob(filepath.Join(plots, "*-uniform-*.png"))
		require.NoError(t, err)
		assert.NotEmpty(t, files)
	})

	t.Run("disabled by default", func(t *testing.T) {
		dir := t.TempDir()
		_, err := execute(t, dir, "uniform")
		require.NoError(t, err)

		files, err := filepath.Glob(filepath.Join(dir, "*.png"))
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"newton", "--mass", "0"}, types.ErrMassNotPositive},
		{[]string{"slide", "--mu-k", "0"}, types.ErrFrictionNotPositive},
		{[]string{"slide", "--dt", "-0.1"}, types.ErrStepNotPositive},
		{[]string{"braking", "--mu-k", "-1"}, types.ErrFrictionNotPositive},
		{[]string{"uniform", "--dt", "0"}, types.ErrStepNotPositive},
		{[]string{"uniform", "--duration", "inf"}, types.ErrNotFinite},
		{[]string{"seeder", "--dt", "NaN"}, types.ErrNotFinite},
		{[]string{"slide", "--dt", "1e-17", "--max-t", "1"}, types.ErrTooManySamples},
		{[]string{"flow", "--samples", "20000000"}, types.ErrTooManySamples},
		{[]string{"flow", "--samples", "1"}, types.ErrSamplesTooFew},
		{[]string{"sowing", "--implement-width", "0"}, types.ErrWidthNotPositive},
		{[]string{"harvest", "--carrying-capacity", "0"}, types.ErrCapacityNotPositive},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := execute(t, t.TempDir(), tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, types.ErrInvalidParameter)
			assert.Equal(t, exitUserError, exitCode(err))
		})
	}
}

func TestMalformedConfigIsSystemError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "slide: [\n")

	_, err := execute(t, dir, "slide")
	require.Error(t, err)
	assert.Equal(t, exitSysError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(errors.New("bad input")))
	assert.Equal(t, exitSysError, exitCode(systemError(errors.New("disk full"))))
	assert.NoError(t, systemError(nil))
}

func TestConfigKey(t *testing.T) {
	assert.Equal(t, "slide.mu_k", configKey("slide", "mu-k"))
	assert.Equal(t, "final_velocity.time", configKey("final_velocity", "time"))
	assert.Equal(t, "compaction.tractor_mass", configKey("compaction", "tractor-mass"))
}
