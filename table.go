package frame

import (
	"fmt"
	"sort"
	"strings"
)

// *********** Sort ***********

type frameSorter struct {
	f  *Frame
	by []*Col
}

func (s *frameSorter) Len() int {
	return s.f.RowCount()
}

func (s *frameSorter) Swap(i, j int) {
	for _, col := range s.f.cols {
		col.Vector.Swap(i, j)
	}
}

func (s *frameSorter) Less(i, j int) bool {
	for _, col := range s.by {
		if col.Vector.Less(i, j) {
			return true
		}

		if col.Vector.Less(j, i) {
			return false
		}

		// equal -- keep checking
	}

	return false
}

// Sort orders the rows ascending by the key columns, in place.
func (f *Frame) Sort(keys ...string) error {
	var by []*Col
	for _, nm := range keys {
		col := f.Column(nm)
		if col == nil {
			return fmt.Errorf("sort column %s not found", nm)
		}

		by = append(by, col)
	}

	sort.Stable(&frameSorter{f: f, by: by})

	return nil
}

// *********** Distinct ***********

// Distinct returns a new Frame with exact duplicate rows removed. A
// duplicate matches on every column, not just the key. First occurrence
// wins; row order is otherwise preserved.
func (f *Frame) Distinct() *Frame {
	seen := make(map[string]bool, f.RowCount())

	var keep []int
	for row := 0; row < f.RowCount(); row++ {
		sig := f.rowSignature(row)
		if seen[sig] {
			continue
		}

		seen[sig] = true
		keep = append(keep, row)
	}

	return f.take(keep)
}

func (f *Frame) rowSignature(row int) string {
	var b strings.Builder
	for _, col := range f.cols {
		b.WriteString(fmt.Sprintf("%v", col.Element(row)))
		b.WriteByte(0)
	}

	return b.String()
}

// *********** Categories ***********

// ToCategory builds the CategoryMap (value -> row count) for a column.
func (f *Frame) ToCategory(colName string) error {
	col := f.Column(colName)
	if col == nil {
		return fmt.Errorf("column %s not found", colName)
	}

	cm := make(CategoryMap)
	for row := 0; row < col.Len(); row++ {
		cm[col.Element(row)]++
	}

	col.catMap = cm

	return nil
}

// *********** Group counts ***********

// By returns one row per distinct value of the key column plus an int
// "count" column, rows ordered by first appearance of the key.
func (f *Frame) By(key string) (*Frame, error) {
	col := f.Column(key)
	if col == nil {
		return nil, fmt.Errorf("column %s not found", key)
	}

	keys, e := col.AsString()
	if e != nil {
		return nil, e
	}

	counts := make(map[string]int, len(keys))
	var order []string
	for _, k := range keys {
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}

		counts[k]++
	}

	kv := make([]string, len(order))
	cv := make([]int, len(order))
	for ind, k := range order {
		kv[ind] = k
		cv[ind] = counts[k]
	}

	keyCol, _ := NewCol(kv, DTstring, ColName(key))
	cntCol, _ := NewCol(cv, DTint, ColName("count"))

	return NewFrame(keyCol, cntCol)
}
