// Package frame implements a small column-oriented table: typed columns,
// delimited-file I/O, name normalization and the relational operations
// (sort, distinct, group counts, left join) a batch pipeline needs.
package frame

import (
	"fmt"
	"time"
)

// DataTypes are the types of data that the package supports
type DataTypes uint8

// values of DataTypes
const (
	DTunknown DataTypes = 0 + iota
	DTstring
	DTfloat
	DTint
	DTdate
)

func (dt DataTypes) String() string {
	switch dt {
	case DTstring:
		return "DTstring"
	case DTfloat:
		return "DTfloat"
	case DTint:
		return "DTint"
	case DTdate:
		return "DTdate"
	default:
		return "DTunknown"
	}
}

// Frame is an ordered collection of equal-length columns.
type Frame struct {
	cols []*Col
}

func NewFrame(cols ...*Col) (*Frame, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns in NewFrame")
	}

	rowCount := cols[0].Len()
	for ind := 0; ind < len(cols); ind++ {
		if cols[ind].Name() == "" {
			return nil, fmt.Errorf("column %d has no name", ind)
		}

		if cols[ind].Len() != rowCount {
			return nil, fmt.Errorf("all columns must have same length")
		}
	}

	f := &Frame{}
	for _, col := range cols {
		if e := f.AppendColumn(col, false); e != nil {
			return nil, e
		}
	}

	return f, nil
}

func (f *Frame) RowCount() int {
	if len(f.cols) == 0 {
		return 0
	}

	return f.cols[0].Len()
}

func (f *Frame) ColumnCount() int {
	return len(f.cols)
}

func (f *Frame) ColumnNames() []string {
	var names []string
	for _, col := range f.cols {
		names = append(names, col.Name())
	}

	return names
}

// Column returns the named column, nil if it is not in the Frame.
func (f *Frame) Column(colName string) *Col {
	for _, col := range f.cols {
		if col.Name() == colName {
			return col
		}
	}

	return nil
}

func (f *Frame) HasColumns(colNames ...string) bool {
	for _, nm := range colNames {
		if f.Column(nm) == nil {
			return false
		}
	}

	return true
}

func (f *Frame) AppendColumn(col *Col, replace bool) error {
	if col.Name() == "" {
		return fmt.Errorf("cannot append unnamed column")
	}

	if len(f.cols) > 0 && col.Len() != f.RowCount() {
		return fmt.Errorf("length mismatch: frame - %d, append col - %d", f.RowCount(), col.Len())
	}

	// a replaced column keeps its position
	if f.Column(col.Name()) != nil {
		if !replace {
			return fmt.Errorf("duplicate column name: %s", col.Name())
		}

		for ind, cx := range f.cols {
			if cx.Name() == col.Name() {
				f.cols[ind] = col
				return nil
			}
		}
	}

	f.cols = append(f.cols, col)

	return nil
}

func (f *Frame) DropColumns(colNames ...string) error {
	for _, cName := range colNames {
		pos := -1
		for ind, col := range f.cols {
			if col.Name() == cName {
				pos = ind
				break
			}
		}

		if pos < 0 {
			return fmt.Errorf("column %s not found", cName)
		}

		f.cols = append(f.cols[:pos], f.cols[pos+1:]...)
	}

	return nil
}

func (f *Frame) KeepColumns(colNames ...string) (*Frame, error) {
	var keep []*Col
	for _, nm := range colNames {
		col := f.Column(nm)
		if col == nil {
			return nil, fmt.Errorf("column %s not found", nm)
		}

		keep = append(keep, col)
	}

	return &Frame{cols: keep}, nil
}

func (f *Frame) Copy() *Frame {
	fc := &Frame{}
	for _, col := range f.cols {
		fc.cols = append(fc.cols, col.Copy())
	}

	return fc
}

// Row returns one row as a name-to-value map.
func (f *Frame) Row(indx int) map[string]any {
	row := make(map[string]any, len(f.cols))
	for _, col := range f.cols {
		row[col.Name()] = col.Element(indx)
	}

	return row
}

// take builds a new Frame from the given row indices, in order.
func (f *Frame) take(rows []int) *Frame {
	out := &Frame{}
	for _, col := range f.cols {
		v := MakeVector(col.DataType(), len(rows))
		for ind, r := range rows {
			switch col.DataType() {
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

		cx, _ := NewCol(v, col.DataType(), ColName(col.Name()))
		out.cols = append(out.cols, cx)
	}

	return out
}
