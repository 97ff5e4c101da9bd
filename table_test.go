package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newsFrame() *Frame {
	state, _ := NewCol([]string{"CA", "CA", "CA", "TX"}, DTstring, ColName("state"))
	url, _ := NewCol([]string{"a", "a", "b", "c"}, DTstring, ColName("url"))
	f, _ := NewFrame(state, url)

	return f
}

func TestSort(t *testing.T) {
	state, _ := NewCol([]string{"TX", "CA", "CA"}, DTstring, ColName("state"))
	n, _ := NewCol([]int{1, 3, 2}, DTint, ColName("n"))
	f, _ := NewFrame(state, n)

	assert.Nil(t, f.Sort("state", "n"))

	s, _ := f.Column("state").AsString()
	ni, _ := f.Column("n").AsInt()
	assert.Equal(t, []string{"CA", "CA", "TX"}, s)
	assert.Equal(t, []int{2, 3, 1}, ni)

	assert.NotNil(t, f.Sort("nope"))
}

func TestDistinct(t *testing.T) {
	f := newsFrame()

	d := f.Distinct()
	assert.Equal(t, 3, d.RowCount())

	// only the full-row duplicate goes; (CA,b) survives
	s, _ := d.Column("state").AsString()
	u, _ := d.Column("url").AsString()
	assert.Equal(t, []string{"CA", "CA", "TX"}, s)
	assert.Equal(t, []string{"a", "b", "c"}, u)
}

func TestBy_Counts(t *testing.T) {
	f := newsFrame().Distinct()

	counts, e := f.By("state")
	assert.Nil(t, e)
	assert.Equal(t, 2, counts.RowCount())

	s, _ := counts.Column("state").AsString()
	c, _ := counts.Column("count").AsInt()
	assert.Equal(t, []string{"CA", "TX"}, s)
	assert.Equal(t, []int{2, 1}, c)
}

func TestToCategory(t *testing.T) {
	f := newsFrame()

	assert.Nil(t, f.ToCategory("state"))
	cm := f.Column("state").CategoryMap()
	assert.Equal(t, 3, cm["CA"])
	assert.Equal(t, 1, cm["TX"])
	assert.Equal(t, 3, cm.Max())

	assert.NotNil(t, f.ToCategory("nope"))
}

func TestColString_Summaries(t *testing.T) {
	x, _ := NewCol([]float64{1, 2, 3, 4}, DTfloat, ColName("x"))
	out := x.String()
	assert.True(t, strings.Contains(out, "median"))
	assert.True(t, strings.Contains(out, "mean"))

	s, _ := NewCol([]string{"CA", "CA", "TX"}, DTstring, ColName("state"))
	out = s.String()
	assert.True(t, strings.Contains(out, "CA"))
	assert.True(t, strings.Contains(out, "count"))
}
