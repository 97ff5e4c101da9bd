package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	frame "github.com/statejoin/statejoin"
)

// ParsePercent turns "37.5%" into 0.375. A value that does not parse
// after stripping the % yields NaN, never an error: a bad cell must not
// abort the run.
func ParsePercent(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))

	x, e := strconv.ParseFloat(s, 64)
	if e != nil {
		return math.NaN()
	}

	return x / 100
}

// EncodeYN maps the legal-protection flags: exactly "Y" is 1, exactly
// "N" is 0, anything else is NaN.
func EncodeYN(s string) float64 {
	switch s {
	case "Y":
		return 1
	case "N":
		return 0
	default:
		return math.NaN()
	}
}

// PercentToFraction replaces a percent-string column with its numeric
// fraction, keeping the column's position.
func PercentToFraction(f *frame.Frame, colName string) error {
	col := f.Column(colName)
	if col == nil {
		return fmt.Errorf("column %s not found", colName)
	}

	s, e := col.AsString()
	if e != nil {
		return e
	}

	out := make([]float64, len(s))
	for ind, sv := range s {
		out[ind] = ParsePercent(sv)
	}

	var cx *frame.Col
	if cx, e = frame.NewCol(out, frame.DTfloat, frame.ColName(colName)); e != nil {
		return e
	}

	return f.AppendColumn(cx, true)
}

// RatioColumn appends numCol/denCol as name. A row is NaN when its
// denominator is zero or missing, or its numerator is missing.
func RatioColumn(f *frame.Frame, name, numCol, denCol string) error {
	num := f.Column(numCol)
	den := f.Column(denCol)
	if num == nil || den == nil {
		return fmt.Errorf("ratio %s needs columns %s and %s", name, numCol, denCol)
	}

	var (
		nv, dv []float64
		e      error
	)
	if nv, e = num.AsFloat(); e != nil {
		return e
	}

	if dv, e = den.AsFloat(); e != nil {
		return e
	}

	out := make([]float64, len(nv))
	for ind := 0; ind < len(nv); ind++ {
		if dv[ind] == 0 || math.IsNaN(dv[ind]) || math.IsNaN(nv[ind]) {
			out[ind] = math.NaN()
			continue
		}

		out[ind] = nv[ind] / dv[ind]
	}

	var cx *frame.Col
	if cx, e = frame.NewCol(out, frame.DTfloat, frame.ColName(name)); e != nil {
		return e
	}

	return f.AppendColumn(cx, false)
}

// zeroFilled returns the column as floats with missing cells set to
// zero, the declared fill for non-reporting states.
func zeroFilled(f *frame.Frame, colName string) ([]float64, error) {
	col := f.Column(colName)
	if col == nil {
		return nil, fmt.Errorf("column %s not found", colName)
	}

	x, e := col.AsFloat()
	if e != nil {
		return nil, e
	}

	out := make([]float64, len(x))
	for ind, xv := range x {
		if math.IsNaN(xv) {
			continue
		}

		out[ind] = xv
	}

	return out, nil
}
