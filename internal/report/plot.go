package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart dimensions.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// PlotReporter renders series as PNG line charts in a directory. Summaries
// are ignored.
type PlotReporter struct {
	dir   string
	files []string
}

// NewPlotReporter writes charts under dir, creating it on first use.
func NewPlotReporter(dir string) *PlotReporter {
	return &PlotReporter{dir: dir}
}

// Files lists the charts written so far.
func (p *PlotReporter) Files() []string {
	return append([]string(nil), p.files...)
}

// Summary implements Reporter.
func (p *PlotReporter) Summary(Summary) error { return nil }

// Series implements Reporter. Each line gets its own chart unless the
// series is an overlay.
func (p *PlotReporter) Series(s Series) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create plot dir: %w", err)
	}

	if s.Overlay {
		return p.save(s, s.Lines, s.seriesFile(""))
	}
	for _, l := range s.Lines {
		if err := p.save(s, []Line{l}, s.seriesFile(l.Label)); err != nil {
			return err
		}
	}
	return nil
}

func (p *PlotReporter) save(s Series, lines []Line, name string) error {
	pl := plot.New()
	pl.Title.Text = s.Title
	pl.X.Label.Text = s.XLabel
	if len(lines) == 1 {
		pl.Y.Label.Text = axisLabel(lines[0])
	}
	pl.Add(plotter.NewGrid())

	for i, l := range lines {
		pts := make(plotter.XYs, len(s.X))
		for j := range s.X {
			pts[j].X = s.X[j]
			pts[j].Y = l.Y[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot %s: %w", name, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.Color = plotutil.Color(i)
		pl.Add(line)
		pl.Legend.Add(axisLabel(l), line)
	}

	path := filepath.Join(p.dir, name)
	if err := pl.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	p.files = append(p.files, path)
	return nil
}

func axisLabel(l Line) string {
	if l.Unit == "" {
		return l.Label
	}
	return fmt.Sprintf("%s (%s)", l.Label, l.Unit)
}

// seriesFile builds <run>-<series>[-<line>].png.
func (s Series) seriesFile(line string) string {
	parts := []string{}
	if s.RunID != "" {
		parts = append(parts, s.RunID)
	}
	parts = append(parts, slug(s.Name))
	if line != "" {
		parts = append(parts, slug(line))
	}
	return strings.Join(parts, "-") + ".png"
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
