package report

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
)

// JSONReporter writes one JSON document per line for each summary and
// series. Non-finite numbers are encoded as the strings "inf", "-inf"
// and "nan", which encoding/json cannot represent as numbers.
type JSONReporter struct {
	enc *json.Encoder
}

// NewJSONReporter writes to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(w)}
}

// Number is a float64 that marshals non-finite values as strings.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-inf"`), nil
	case math.IsNaN(f):
		return []byte(`"nan"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type jsonValue struct {
	Label string `json:"label"`
	Value Number `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

type jsonSummary struct {
	Kind   string      `json:"kind"`
	RunID  string      `json:"run_id,omitempty"`
	Title  string      `json:"title"`
	Values []jsonValue `json:"values"`
	Notes  []string    `json:"notes,omitempty"`
}

type jsonLine struct {
	Label string   `json:"label"`
	Unit  string   `json:"unit,omitempty"`
	Y     []Number `json:"y"`
}

type jsonSeries struct {
	Kind   string     `json:"kind"`
	RunID  string     `json:"run_id,omitempty"`
	Name   string     `json:"name"`
	Title  string     `json:"title,omitempty"`
	XLabel string     `json:"x_label,omitempty"`
	X      []Number   `json:"x"`
	Lines  []jsonLine `json:"lines"`
}

// Summary implements Reporter.
func (j *JSONReporter) Summary(s Summary) error {
	doc := jsonSummary{
		Kind:   "summary",
		RunID:  s.RunID,
		Title:  s.Title,
		Values: make([]jsonValue, len(s.Values)),
		Notes:  s.Notes,
	}
	for i, v := range s.Values {
		doc.Values[i] = jsonValue{Label: v.Label, Value: Number(v.Value), Unit: v.Unit}
	}
	return j.enc.Encode(doc)
}

// Series implements Reporter.
func (j *JSONReporter) Series(s Series) error {
	doc := jsonSeries{
		Kind:   "series",
		RunID:  s.RunID,
		Name:   s.Name,
		Title:  s.Title,
		XLabel: s.XLabel,
		X:      numbers(s.X),
		Lines:  make([]jsonLine, len(s.Lines)),
	}
	for i, l := range s.Lines {
		doc.Lines[i] = jsonLine{Label: l.Label, Unit: l.Unit, Y: numbers(l.Y)}
	}
	return j.enc.Encode(doc)
}

func numbers(fs []float64) []Number {
	out := make([]Number, len(fs))
	for i, f := range fs {
		out[i] = Number(f)
	}
	return out
}
