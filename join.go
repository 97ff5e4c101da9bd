package frame

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// LeftJoin joins f to right on a shared string key column. Every row of
// f is preserved; rows with no match take NaN (numeric) or "" (string)
// for the right-hand columns. A right-hand int column is promoted to
// float when any row is unmatched, since an int cell cannot hold a
// missing value. Duplicate right-hand keys fan out the left row; key
// uniqueness is not validated. The right key column is not repeated in
// the result.
func (f *Frame) LeftJoin(right *Frame, key string) (*Frame, error) {
	leftKey := f.Column(key)
	rightKey := right.Column(key)
	if leftKey == nil || rightKey == nil {
		return nil, fmt.Errorf("join key %s missing from a table", key)
	}

	var (
		lk, rk []string
		e      error
	)
	if lk, e = leftKey.AsString(); e != nil {
		return nil, e
	}

	if rk, e = rightKey.AsString(); e != nil {
		return nil, e
	}

	// index the right table by key
	index := make(map[string][]int, len(rk))
	for ind, k := range rk {
		k = strings.TrimSpace(k)
		index[k] = append(index[k], ind)
	}

	var leftRows, rightRows []int
	for ind := 0; ind < len(lk); ind++ {
		matches, ok := index[strings.TrimSpace(lk[ind])]
		if !ok {
			leftRows = append(leftRows, ind)
			rightRows = append(rightRows, -1)
			continue
		}

		for _, m := range matches {
			leftRows = append(leftRows, ind)
			rightRows = append(rightRows, m)
		}
	}

	out := f.take(leftRows)
	for _, col := range right.cols {
		if col.Name() == key {
			continue
		}

		gathered, eg := gather(col, rightRows)
		if eg != nil {
			return nil, eg
		}

		if e := out.AppendColumn(gathered, false); e != nil {
			return nil, e
		}
	}

	return out, nil
}

// UnmatchedKeys counts rows of f whose key has no match in right.
func (f *Frame) UnmatchedKeys(right *Frame, key string) int {
	leftKey := f.Column(key)
	rightKey := right.Column(key)
	if leftKey == nil || rightKey == nil {
		return 0
	}

	lk, el := leftKey.AsString()
	rk, er := rightKey.AsString()
	if el != nil || er != nil {
		return 0
	}

	seen := make(map[string]bool, len(rk))
	for _, k := range rk {
		seen[strings.TrimSpace(k)] = true
	}

	n := 0
	for _, k := range lk {
		if !seen[strings.TrimSpace(k)] {
			n++
		}
	}

	return n
}

// gather pulls rows of col by index; -1 yields the missing sentinel.
func gather(col *Col, rows []int) (*Col, error) {
	dt := col.DataType()
	if dt == DTint && has(-1, rows) {
		dt = DTfloat
	}

	v := MakeVector(dt, len(rows))
	for ind, r := range rows {
		if r < 0 {
			switch dt {
			case DTfloat:
				v.SetFloat(math.NaN(), ind)
			case DTstring:
				v.SetString("", ind)
			case DTdate:
				v.data.([]time.Time)[ind] = time.Time{}
			}

			continue
		}

		switch dt {
		case DTfloat:
			v.SetFloat(col.ElementFloat(r), ind)
		case DTint:
			v.SetInt(col.ElementInt(r), ind)
		case DTstring:
			v.SetString(col.ElementString(r), ind)
		case DTdate:
			v.data.([]time.Time)[ind] = col.Element(r).(time.Time)
		}
	}

	return NewCol(v, dt, ColName(col.Name()))
}
