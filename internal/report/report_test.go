package report

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder keeps what it receives.
type recorder struct {
	summaries []Summary
	series    []Series
}

func (r *recorder) Summary(s Summary) error {
	r.summaries = append(r.summaries, s)
	return nil
}

func (r *recorder) Series(s Series) error {
	r.series = append(r.series, s)
	return nil
}

func sampleSeries() Series {
	return Series{
		Name:   "slide",
		Title:  "Slide",
		XLabel: "time (s)",
		X:      []float64{0, 1, 2},
		Lines: []Line{
			{Label: "velocity", Unit: "m/s", Y: []float64{2, 1, 0}},
			{Label: "position", Unit: "m", Y: []float64{0, 1.5, 2}},
		},
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"default precision", Value{Value: 4.24628}, "4.25"},
		{"explicit precision with unit", Value{Value: -2.943, Unit: "m/s²", Precision: 3}, "-2.943 m/s²"},
		{"infinite", Value{Value: math.Inf(1), Unit: "s"}, "inf s"},
		{"not a number", Value{Value: math.NaN()}, "nan"},
		{"no decimals", Value{Value: 42918.75, Unit: "Pa", Precision: NoDecimals}, "42919 Pa"},
		{"any negative precision means no decimals", Value{Value: 2.4, Precision: -3}, "2"},
		{"no decimals keeps inf", Value{Value: math.Inf(-1), Precision: NoDecimals}, "-inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.v))
		})
	}
}

func TestTextReporterSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	err := r.Summary(Summary{
		Title: "Braking",
		Values: []Value{
			{Label: "Deceleration", Value: -2.943, Unit: "m/s2", Precision: 3},
			{Label: "Stopping distance", Value: 4.2462, Unit: "m", Precision: 3},
		},
		Notes: []string{"friction opposes motion"},
	})
	require.NoError(t, err)

	want := "Braking\n  Deceleration: -2.943 m/s2\n  Stopping distance: 4.246 m\n  friction opposes motion\n"
	assert.Equal(t, want, buf.String())
	assert.NoError(t, r.Series(sampleSeries()))
	assert.Equal(t, want, buf.String(), "series are not printed")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)

	require.NoError(t, r.Summary(Summary{
		RunID:  "run-1",
		Title:  "Sowing",
		Values: []Value{{Label: "Total", Value: math.Inf(1), Unit: "s"}, {Label: "Rate", Value: 4.05}},
	}))
	require.NoError(t, r.Series(sampleSeries()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &summary))
	assert.Equal(t, "summary", summary["kind"])
	assert.Equal(t, "run-1", summary["run_id"])
	values := summary["values"].([]any)
	assert.Equal(t, "inf", values[0].(map[string]any)["value"])
	assert.Equal(t, 4.05, values[1].(map[string]any)["value"])

	var series map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &series))
	assert.Equal(t, "series", series["kind"])
	assert.Len(t, series["x"], 3)
	assert.Len(t, series["lines"], 2)
}

func TestSeriesValidate(t *testing.T) {
	s := sampleSeries()
	assert.NoError(t, s.Validate())

	s.Lines[0].Y = s.Lines[0].Y[:2]
	assert.ErrorIs(t, s.Validate(), ErrLengthMismatch)

	assert.ErrorIs(t, Series{Name: "empty"}.Validate(), ErrEmptySeries)
}

func TestRunStampsID(t *testing.T) {
	rec := &recorder{}
	run, err := NewRun(rec)
	require.NoError(t, err)

	id, err := uuid.Parse(run.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	require.NoError(t, run.Summary(Summary{Title: "a"}))
	require.NoError(t, run.Series(sampleSeries()))
	assert.Equal(t, run.ID, rec.summaries[0].RunID)
	assert.Equal(t, run.ID, rec.series[0].RunID)

	bad := sampleSeries()
	bad.X = nil
	assert.ErrorIs(t, run.Series(bad), ErrEmptySeries)
	assert.Len(t, rec.series, 1)
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi{a, b}
	require.NoError(t, m.Summary(Summary{Title: "x"}))
	require.NoError(t, m.Series(sampleSeries()))
	assert.Len(t, a.summaries, 1)
	assert.Len(t, b.summaries, 1)
	assert.Len(t, a.series, 1)
	assert.Len(t, b.series, 1)
}

func TestPlotReporterWritesOneChartPerLine(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	r := NewPlotReporter(dir)

	s := sampleSeries()
	s.RunID = "run"
	require.NoError(t, r.Series(s))
	require.NoError(t, r.Summary(Summary{Title: "ignored"}))

	files := r.Files()
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "run-slide-velocity.png"), files[0])
	assert.Equal(t, filepath.Join(dir, "run-slide-position.png"), files[1])
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestPlotReporterOverlay(t *testing.T) {
	dir := t.TempDir()
	r := NewPlotReporter(dir)

	s := sampleSeries()
	s.Name = "Flow Equilibrium"
	s.Overlay = true
	require.NoError(t, r.Series(s))

	files := r.Files()
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "flow-equilibrium.png"), files[0])
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "velocity-m-s", slug("Velocity (m/s)"))
	assert.Equal(t, "biomass-fraction", slug("  biomass fraction "))
}
