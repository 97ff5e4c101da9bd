package frame

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var dateFormats = []string{"2006-01-02", "20060102", "1/2/2006", "01/02/2006",
	"Jan 2, 2006", "January 2, 2006", "Jan 2 2006", "January 2 2006"}

// *********** Conversions ***********

func toFloat(x any) (any, bool) {
	if f, ok := x.(float64); ok {
		return f, true
	}

	xv := reflect.ValueOf(x)
	if xv.CanFloat() {
		return xv.Float(), true
	}

	if xv.CanInt() {
		return float64(xv.Int()), true
	}

	if s, ok := x.(string); ok {
		if f, e := strconv.ParseFloat(strings.TrimSpace(s), 64); e == nil {
			return f, true
		}
	}

	return nil, false
}

func toInt(x any) (any, bool) {
	if i, ok := x.(int); ok {
		return i, true
	}

	xv := reflect.ValueOf(x)
	if xv.CanInt() {
		return int(xv.Int()), true
	}

	// a float only converts when it carries no fraction
	if f, ok := x.(float64); ok {
		if f == math.Trunc(f) && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f), true
		}

		return nil, false
	}

	if s, ok := x.(string); ok {
		if i, e := strconv.ParseInt(strings.TrimSpace(s), 10, 64); e == nil {
			return int(i), true
		}
	}

	return nil, false
}

func toString(x any) (any, bool) {
	if s, ok := x.(string); ok {
		return s, true
	}

	if f, ok := x.(float64); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}

	if i, ok := x.(int); ok {
		return fmt.Sprintf("%d", i), true
	}

	if d, ok := x.(time.Time); ok {
		return d.Format("2006-01-02"), true
	}

	return nil, false
}

func toDate(x any) (any, bool) {
	if d, ok := x.(time.Time); ok {
		return d, true
	}

	if d, ok := x.(string); ok {
		for _, fmtx := range dateFormats {
			if dt, e := time.Parse(fmtx, d); e == nil {
				return dt, true
			}
		}
	}

	return nil, false
}

// WhatAmI reports the DataTypes of a scalar or slice value.
func WhatAmI(val any) DataTypes {
	switch val.(type) {
	case float64, []float64:
		return DTfloat
	case int, []int:
		return DTint
	case string, []string:
		return DTstring
	case time.Time, []time.Time:
		return DTdate
	default:
		return DTunknown
	}
}

// bestType finds the narrowest type every value in the slice parses as,
// in the order int, float, string. Empty strings are skipped: they are
// missing cells and do not pin the type.
func bestType(vals []string) DataTypes {
	dt := DTunknown
	for _, s := range vals {
		if strings.TrimSpace(s) == "" {
			continue
		}

		vt := DTstring
		switch {
		case parses(s, DTint):
			vt = DTint
		case parses(s, DTfloat):
			vt = DTfloat
		}

		dt = widen(dt, vt)
	}

	if dt == DTunknown {
		return DTstring
	}

	return dt
}

func widen(a, b DataTypes) DataTypes {
	if a == DTunknown {
		return b
	}

	if a == b {
		return a
	}

	// int widens to float, anything else widens to string
	if (a == DTint && b == DTfloat) || (a == DTfloat && b == DTint) {
		return DTfloat
	}

	return DTstring
}

func parses(s string, dt DataTypes) bool {
	s = strings.TrimSpace(s)
	switch dt {
	case DTint:
		_, e := strconv.ParseInt(s, 10, 64)
		return e == nil
	case DTfloat:
		_, e := strconv.ParseFloat(s, 64)
		return e == nil
	default:
		return true
	}
}
