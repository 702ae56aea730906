// Package report is the output side of the mecanica calculators. The
// numerical packages return plain values; commands hand them to a
// Reporter, which prints them, encodes them or charts them.
package report

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DefaultPrecision is the number of decimals used when a Value sets none.
const DefaultPrecision = 2

// NoDecimals is the Precision that renders a value with zero decimals.
const NoDecimals = -1

// Value is one labelled scalar in a summary.
type Value struct {
	Label string
	Value float64
	Unit  string

	// Precision is the number of decimals. Zero means DefaultPrecision and
	// any negative value means none.
	Precision int
}

// Summary is a titled list of scalar results.
type Summary struct {
	RunID  string
	Title  string
	Values []Value
	Notes  []string
}

// Line is one dependent variable of a series.
type Line struct {
	Label string
	Unit  string
	Y     []float64
}

// Series is a set of lines sharing an x axis.
type Series struct {
	RunID  string
	Name   string
	Title  string
	XLabel string
	X      []float64
	Lines  []Line
	// Overlay draws every line on one chart instead of one chart per line.
	Overlay bool
}

// Validate checks that every line has one y per x.
func (s Series) Validate() error {
	if len(s.X) == 0 {
		return fmt.Errorf("series %s: %w", s.Name, ErrEmptySeries)
	}
	for _, l := range s.Lines {
		if len(l.Y) != len(s.X) {
			return fmt.Errorf("series %s line %q: %w (%d x, %d y)", s.Name, l.Label, ErrLengthMismatch, len(s.X), len(l.Y))
		}
	}
	return nil
}

// Series errors.
var (
	ErrEmptySeries    = errors.New("series has no samples")
	ErrLengthMismatch = errors.New("series line length differs from x axis")
)

// Reporter consumes calculator results.
type Reporter interface {
	Summary(Summary) error
	Series(Series) error
}

// Multi fans every result out to each reporter in order, stopping at the
// first error.
type Multi []Reporter

// Summary implements Reporter.
func (m Multi) Summary(s Summary) error {
	for _, r := range m {
		if err := r.Summary(s); err != nil {
			return err
		}
	}
	return nil
}

// Series implements Reporter.
func (m Multi) Series(s Series) error {
	for _, r := range m {
		if err := r.Series(s); err != nil {
			return err
		}
	}
	return nil
}

// Run stamps every result of one command invocation with the same
// run identifier before passing it on.
type Run struct {
	ID       string
	reporter Reporter
}

// NewRun starts a run with a fresh UUID v7 identifier.
func NewRun(r Reporter) (*Run, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}
	return &Run{ID: id.String(), reporter: r}, nil
}

// Summary reports s under the run's identifier.
func (r *Run) Summary(s Summary) error {
	s.RunID = r.ID
	return r.reporter.Summary(s)
}

// Series reports s under the run's identifier.
func (r *Run) Series(s Series) error {
	s.RunID = r.ID
	if err := s.Validate(); err != nil {
		return err
	}
	return r.reporter.Series(s)
}
