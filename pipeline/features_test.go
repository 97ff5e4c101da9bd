package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	frame "github.com/statejoin/statejoin"
)

func TestParsePercent(t *testing.T) {
	assert.Equal(t, 0.375, ParsePercent("37.5%"))
	assert.Equal(t, 0.0, ParsePercent("0%"))
	assert.InDelta(t, 0.123, ParsePercent("12.3%"), 1e-12)
	assert.Equal(t, 0.5, ParsePercent("50"))
	assert.Equal(t, 0.04, ParsePercent(" 4% "))

	assert.True(t, math.IsNaN(ParsePercent("n/a")))
	assert.True(t, math.IsNaN(ParsePercent("")))
	assert.True(t, math.IsNaN(ParsePercent("%")))
}

func TestEncodeYN(t *testing.T) {
	assert.Equal(t, 1.0, EncodeYN("Y"))
	assert.Equal(t, 0.0, EncodeYN("N"))

	assert.True(t, math.IsNaN(EncodeYN("")))
	assert.True(t, math.IsNaN(EncodeYN("Unknown")))
	assert.True(t, math.IsNaN(EncodeYN("y")))
}

func TestPercentToFraction_KeepsPosition(t *testing.T) {
	state, _ := frame.NewCol([]string{"CA", "TX"}, frame.DTstring, frame.ColName("state"))
	density, _ := frame.NewCol([]string{"5.3%", "bad"}, frame.DTstring, frame.ColName("density"))
	n, _ := frame.NewCol([]int{1, 2}, frame.DTint, frame.ColName("n"))
	f, _ := frame.NewFrame(state, density, n)

	assert.Nil(t, PercentToFraction(f, "density"))
	assert.Equal(t, []string{"state", "density", "n"}, f.ColumnNames())

	col := f.Column("density")
	assert.Equal(t, frame.DTfloat, col.DataType())
	assert.InDelta(t, 0.053, col.ElementFloat(0), 1e-12)
	assert.True(t, math.IsNaN(col.ElementFloat(1)))

	assert.NotNil(t, PercentToFraction(f, "nope"))
}

func TestRatioColumn(t *testing.T) {
	state, _ := frame.NewCol([]string{"CA", "TX", "VT"}, frame.DTstring, frame.ColName("state"))
	num, _ := frame.NewCol([]float64{10, 20, 30}, frame.DTfloat, frame.ColName("num"))
	den, _ := frame.NewCol([]float64{4, 0, math.NaN()}, frame.DTfloat, frame.ColName("den"))
	f, _ := frame.NewFrame(state, num, den)

	assert.Nil(t, RatioColumn(f, "ratio", "num", "den"))

	col := f.Column("ratio")
	assert.Equal(t, 2.5, col.ElementFloat(0))
	assert.True(t, math.IsNaN(col.ElementFloat(1)))
	assert.True(t, math.IsNaN(col.ElementFloat(2)))

	assert.NotNil(t, RatioColumn(f, "bad", "num", "nope"))
}
