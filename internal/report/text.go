package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// TextReporter prints summaries as fixed-point lines. Series are not
// printed; they are only meaningful to a chart.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter writes to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Summary implements Reporter.
func (t *TextReporter) Summary(s Summary) error {
	if _, err := fmt.Fprintln(t.w, s.Title); err != nil {
		return err
	}
	for _, v := range s.Values {
		line := fmt.Sprintf("  %s: %s", v.Label, FormatValue(v))
		if _, err := fmt.Fprintln(t.w, line); err != nil {
			return err
		}
	}
	for _, n := range s.Notes {
		if _, err := fmt.Fprintf(t.w, "  %s\n", n); err != nil {
			return err
		}
	}
	return nil
}

// Series implements Reporter.
func (t *TextReporter) Series(Series) error { return nil }

// FormatValue renders v with its precision and unit. Infinite values,
// the unreachable sentinel, render as "inf".
func FormatValue(v Value) string {
	var num string
	switch {
	case math.IsInf(v.Value, 1):
		num = "inf"
	case math.IsInf(v.Value, -1):
		num = "-inf"
	case math.IsNaN(v.Value):
		num = "nan"
	default:
		prec := v.Precision
		switch {
		case prec < 0:
			prec = 0
		case prec == 0:
			prec = DefaultPrecision
		}
		num = strconv.FormatFloat(v.Value, 'f', prec, 64)
	}
	if v.Unit == "" {
		return num
	}
	return num + " " + v.Unit
}
