package frame

import (
	"fmt"
	"math"
	"time"
)

// Vector holds the data of a single column as a typed slice.
type Vector struct {
	dt DataTypes

	data any
}

func NewVector(data any, dt DataTypes) (*Vector, error) {
	switch dt {
	case DTfloat:
		if _, ok := data.([]float64); !ok {
			return nil, fmt.Errorf("data is not []float64")
		}
	case DTint:
		if _, ok := data.([]int); !ok {
			return nil, fmt.Errorf("data is not []int")
		}
	case DTstring:
		if _, ok := data.([]string); !ok {
			return nil, fmt.Errorf("data is not []string")
		}
	case DTdate:
		if _, ok := data.([]time.Time); !ok {
			return nil, fmt.Errorf("data is not []time.Time")
		}
	default:
		return nil, fmt.Errorf("cannot make vector of type %s", dt)
	}

	return &Vector{dt: dt, data: data}, nil
}

func MakeVector(dt DataTypes, n int) *Vector {
	switch dt {
	case DTfloat:
		return &Vector{dt: dt, data: make([]float64, n)}
	case DTint:
		return &Vector{dt: dt, data: make([]int, n)}
	case DTstring:
		return &Vector{dt: dt, data: make([]string, n)}
	case DTdate:
		return &Vector{dt: dt, data: make([]time.Time, n)}
	default:
		panic(fmt.Errorf("cannot make Vector with data type %s", dt))
	}
}

func (v *Vector) VectorType() DataTypes {
	return v.dt
}

func (v *Vector) AsAny() any {
	return v.data
}

func (v *Vector) Len() int {
	switch v.dt {
	case DTfloat:
		return len(v.data.([]float64))
	case DTint:
		return len(v.data.([]int))
	case DTstring:
		return len(v.data.([]string))
	case DTdate:
		return len(v.data.([]time.Time))
	default:
		panic(fmt.Errorf("unexpected error in Vector.Len"))
	}
}

func (v *Vector) SetFloat(val float64, indx int) {
	if v.VectorType() != DTfloat {
		panic(fmt.Errorf("vector isn't DTfloat"))
	}

	v.data.([]float64)[indx] = val
}

func (v *Vector) SetInt(val, indx int) {
	if v.VectorType() != DTint {
		panic(fmt.Errorf("vector isn't DTint"))
	}

	v.data.([]int)[indx] = val
}

func (v *Vector) SetString(val string, indx int) {
	if v.VectorType() != DTstring {
		panic(fmt.Errorf("vector isn't DTstring"))
	}

	v.data.([]string)[indx] = val
}

func (v *Vector) Element(indx int) any {
	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[indx]
	case DTint:
		return v.data.([]int)[indx]
	case DTstring:
		return v.data.([]string)[indx]
	case DTdate:
		return v.data.([]time.Time)[indx]
	default:
		panic(fmt.Errorf("error in Element"))
	}
}

func (v *Vector) ElementFloat(indx int) float64 {
	if v.VectorType() == DTfloat {
		return v.data.([]float64)[indx]
	}

	if val, ok := toFloat(v.Element(indx)); ok {
		return val.(float64)
	}

	return math.NaN()
}

func (v *Vector) ElementInt(indx int) int {
	if v.VectorType() == DTint {
		return v.data.([]int)[indx]
	}

	if val, ok := toInt(v.Element(indx)); ok {
		return val.(int)
	}

	panic(fmt.Errorf("element is not int-able"))
}

func (v *Vector) ElementString(indx int) string {
	if v.VectorType() == DTstring {
		return v.data.([]string)[indx]
	}

	if x, ok := toString(v.Element(indx)); ok {
		return x.(string)
	}

	return ""
}

// AsFloat returns the data as []float64, coercing ints. NaN survives the trip.
func (v *Vector) AsFloat() ([]float64, error) {
	if v.VectorType() == DTfloat {
		return v.data.([]float64), nil
	}

	if v.VectorType() == DTint {
		xOut := make([]float64, v.Len())
		for ind, xx := range v.data.([]int) {
			xOut[ind] = float64(xx)
		}

		return xOut, nil
	}

	var vx *Vector
	if vx = v.Coerce(DTfloat); vx == nil {
		return nil, fmt.Errorf("cannot convert %s vector to float", v.dt)
	}

	return vx.data.([]float64), nil
}

func (v *Vector) AsInt() ([]int, error) {
	if v.VectorType() == DTint {
		return v.data.([]int), nil
	}

	var vx *Vector
	if vx = v.Coerce(DTint); vx == nil {
		return nil, fmt.Errorf("cannot convert %s vector to int", v.dt)
	}

	return vx.data.([]int), nil
}

func (v *Vector) AsString() ([]string, error) {
	if v.dt == DTstring {
		return v.data.([]string), nil
	}

	var vx *Vector
	if vx = v.Coerce(DTstring); vx == nil {
		return nil, fmt.Errorf("cannot convert %s vector to string", v.dt)
	}

	return vx.data.([]string), nil
}

func (v *Vector) Append(data ...any) {
	for ind := 0; ind < len(data); ind++ {
		switch v.dt {
		case DTfloat:
			var (
				x  any
				ok bool
			)
			if x, ok = toFloat(data[ind]); !ok {
				panic(fmt.Errorf("cannot make float in Append"))
			}

			v.data = append(v.data.([]float64), x.(float64))
		case DTint:
			var (
				x  any
				ok bool
			)
			if x, ok = toInt(data[ind]); !ok {
				panic(fmt.Errorf("cannot make int in Append"))
			}

			v.data = append(v.data.([]int), x.(int))
		case DTstring:
			var (
				x  any
				ok bool
			)
			if x, ok = toString(data[ind]); !ok {
				panic(fmt.Errorf("cannot make string in Append"))
			}

			v.data = append(v.data.([]string), x.(string))
		case DTdate:
			var (
				xv any
				ok bool
			)
			if xv, ok = toDate(data[ind]); !ok {
				panic(fmt.Errorf("cannot make date in Append"))
			}

			v.data = append(v.data.([]time.Time), xv.(time.Time))
		}
	}
}

func (v *Vector) Copy() *Vector {
	vCopy := &Vector{dt: v.dt}
	switch v.dt {
	case DTfloat:
		x := make([]float64, v.Len())
		copy(x, v.data.([]float64))
		vCopy.data = x
	case DTint:
		x := make([]int, v.Len())
		copy(x, v.data.([]int))
		vCopy.data = x
	case DTstring:
		x := make([]string, v.Len())
		copy(x, v.data.([]string))
		vCopy.data = x
	case DTdate:
		x := make([]time.Time, v.Len())
		copy(x, v.data.([]time.Time))
		vCopy.data = x
	default:
		panic(fmt.Errorf("unexpected error in Vector.Copy"))
	}

	return vCopy
}

// Coerce converts element-by-element, returning nil if any element fails.
func (v *Vector) Coerce(to DataTypes) *Vector {
	xOut := MakeVector(to, v.Len())
	for ind := 0; ind < v.Len(); ind++ {
		vIn := v.Element(ind)
		switch to {
		case DTfloat:
			if vOut, ok := toFloat(vIn); ok {
				xOut.SetFloat(vOut.(float64), ind)
				continue
			}

			return nil
		case DTint:
			if vOut, ok := toInt(vIn); ok {
				xOut.SetInt(vOut.(int), ind)
				continue
			}

			return nil
		case DTstring:
			if vOut, ok := toString(vIn); ok {
				xOut.SetString(vOut.(string), ind)
				continue
			}

			return nil
		default:
			return nil
		}
	}

	return xOut
}

func (v *Vector) Swap(i, j int) {
	switch v.dt {
	case DTfloat:
		v.data.([]float64)[i], v.data.([]float64)[j] = v.data.([]float64)[j], v.data.([]float64)[i]
	case DTint:
		v.data.([]int)[i], v.data.([]int)[j] = v.data.([]int)[j], v.data.([]int)[i]
	case DTstring:
		v.data.([]string)[i], v.data.([]string)[j] = v.data.([]string)[j], v.data.([]string)[i]
	case DTdate:
		v.data.([]time.Time)[i], v.data.([]time.Time)[j] = v.data.([]time.Time)[j], v.data.([]time.Time)[i]
	default:
		panic(fmt.Errorf("unexpected error in Vector.Swap"))
	}
}

func (v *Vector) Less(i, j int) bool {
	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[i] < v.data.([]float64)[j]
	case DTint:
		return v.data.([]int)[i] < v.data.([]int)[j]
	case DTstring:
		return v.data.([]string)[i] < v.data.([]string)[j]
	case DTdate:
		return v.data.([]time.Time)[i].Before(v.data.([]time.Time)[j])
	default:
		panic(fmt.Errorf("unexpected error in Vector.Less"))
	}
}
