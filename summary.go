package frame

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// String prints a summary of the column: quantiles and mean for numeric
// columns, a value/count table otherwise.
func (c *Col) String() string {
	name := c.Name()
	if name == "" {
		name = "unnamed"
	}

	t := fmt.Sprintf("column: %s\ntype: %s\n", name, c.DataType())

	if c.DataType() != DTfloat && c.DataType() != DTint {
		return t + countTable(c)
	}

	if c.Len() == 0 {
		return t
	}

	f, e := c.AsFloat()
	if e != nil {
		return t
	}

	x := make([]float64, len(f))
	copy(x, f)
	sort.Float64s(x)

	q25 := stat.Quantile(0.25, stat.LinInterp, x, nil)
	q50 := stat.Quantile(0.5, stat.LinInterp, x, nil)
	q75 := stat.Quantile(0.75, stat.LinInterp, x, nil)
	xbar := stat.Mean(x, nil)

	cats := []string{"min", "lq", "median", "mean", "uq", "max", "n"}
	vals := []float64{x[0], q25, q50, xbar, q75, x[len(x)-1], float64(c.Len())}
	header := []string{"metric", "value"}

	return t + prettyPrint(header, cats, vals)
}

func countTable(c *Col) string {
	cm := c.CategoryMap()
	if cm == nil {
		cm = make(CategoryMap)
		for row := 0; row < c.Len(); row++ {
			cm[c.Element(row)]++
		}
	}

	type pair struct {
		key   string
		count int
	}

	var pairs []pair
	for k, v := range cm {
		s, _ := toString(k)
		pairs = append(pairs, pair{key: s.(string), count: v})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}

		return pairs[i].key < pairs[j].key
	})

	keys := make([]string, len(pairs))
	vals := make([]int, len(pairs))
	for ind, p := range pairs {
		keys[ind] = p.key
		vals[ind] = p.count
	}

	header := []string{"value", "count"}

	return prettyPrint(header, keys, vals)
}

// *********** pretty printing ***********

func prettyPrint(header []string, cols ...any) string {
	var colsS [][]string
	for ind := 0; ind < len(cols); ind++ {
		colsS = append(colsS, stringSlice(header[ind], cols[ind]))
	}

	out := ""
	for row := 0; row < len(colsS[0]); row++ {
		for c := 0; c < len(colsS); c++ {
			out += colsS[c][row]
		}
		out += "\n"
	}

	return out
}

func stringSlice(header string, inVal any) []string {
	const pad = 3

	c := []string{header}

	format := ""
	n := 0
	var dt DataTypes
	switch x := inVal.(type) {
	case []float64:
		format = selectFormat(x)
		n = len(x)
		dt = DTfloat
	case []int:
		format = "%d"
		n = len(x)
		dt = DTint
	case []string:
		format = "%s"
		n = len(x)
		dt = DTstring
	default:
		panic(fmt.Errorf("unsupported data type in stringSlice"))
	}

	maxLen := len(header)
	for ind := 0; ind < n; ind++ {
		var el string
		switch x := inVal.(type) {
		case []float64:
			el = fmt.Sprintf(format, x[ind])
		case []int:
			el = fmt.Sprintf(format, x[ind])
		case []string:
			el = x[ind]
		}

		if l := len(el); l > maxLen {
			maxLen = l
		}

		c = append(c, el)
	}

	for ind, cx := range c {
		padded := cx + strings.Repeat(" ", maxLen-len(cx)+pad)
		if dt == DTint || dt == DTfloat {
			padded = strings.Repeat(" ", maxLen-len(cx)+pad) + cx
		}

		c[ind] = padded
	}

	return c
}

func selectFormat(x []float64) string {
	if len(x) == 0 {
		return "%.2f"
	}

	maxX := math.Abs(x[0])
	for _, xv := range x {
		if xa := math.Abs(xv); xa > maxX {
			maxX = xa
		}
	}

	if maxX >= 100 {
		return "%.0f"
	}

	return "%.4f"
}
