package frame

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDialect(t *testing.T) {
	_, e := NewDialect("clickhouse", nil)
	assert.Nil(t, e)

	_, e = NewDialect("Postgres", nil)
	assert.Nil(t, e)

	_, e = NewDialect("oracle", nil)
	assert.NotNil(t, e)
}

func TestDialect_CreateSQL(t *testing.T) {
	state, _ := NewCol([]string{"California"}, DTstring, ColName("state"))
	rate, _ := NewCol([]float64{0.5}, DTfloat, ColName("rate"))
	n, _ := NewCol([]int{3}, DTint, ColName("n"))
	f, _ := NewFrame(state, rate, n)

	d, _ := NewDialect("clickhouse", nil)
	create, e := d.createSQL(f, "hate_crimes_joined")
	assert.Nil(t, e)
	assert.True(t, strings.Contains(create, "CREATE TABLE hate_crimes_joined"))
	assert.True(t, strings.Contains(create, "state String"))
	assert.True(t, strings.Contains(create, "rate Nullable(Float64)"))
	assert.True(t, strings.Contains(create, "n Int64"))
	assert.True(t, strings.Contains(create, "ORDER BY state"))

	dpg, _ := NewDialect("postgres", nil)
	create, e = dpg.createSQL(f, "hate_crimes_joined")
	assert.Nil(t, e)
	assert.True(t, strings.Contains(create, "rate DOUBLE PRECISION"))
	assert.False(t, strings.Contains(create, "ENGINE"))
}

func TestDialect_InsertSQL(t *testing.T) {
	state, _ := NewCol([]string{"O'ahu", "Texas"}, DTstring, ColName("state"))
	rate, _ := NewCol([]float64{0.5, math.NaN()}, DTfloat, ColName("rate"))
	f, _ := NewFrame(state, rate)

	d, _ := NewDialect("clickhouse", nil)
	ins, e := d.insertSQL(f, "t")
	assert.Nil(t, e)
	assert.True(t, strings.Contains(ins, "INSERT INTO t (state, rate)"))
	assert.True(t, strings.Contains(ins, "('O''ahu', 0.5)"))
	assert.True(t, strings.Contains(ins, "('Texas', NULL)"))
}
