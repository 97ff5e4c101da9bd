package frame

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// All code interacting with delimited files is here.

const (
	Sep    = ','
	Header = true
)

type fileOptions struct {
	sep    rune
	header bool
}

type FileOpt func(*fileOptions)

func FileSep(sep rune) FileOpt {
	return func(o *fileOptions) {
		o.sep = sep
	}
}

// ReadCSV loads a delimited file into a Frame. The first row is the
// header. Each column gets the narrowest type every non-empty cell
// parses as (int, then float, then string); a numeric column with empty
// cells is loaded as float with NaN in the empty positions.
func ReadCSV(fileName string, opts ...FileOpt) (*Frame, error) {
	o := &fileOptions{sep: Sep, header: Header}
	for _, opt := range opts {
		opt(o)
	}

	file, e := os.Open(fileName)
	if e != nil {
		return nil, e
	}
	defer func() { _ = file.Close() }()

	rdr := csv.NewReader(file)
	rdr.Comma = o.sep
	rdr.TrimLeadingSpace = true

	var recs [][]string
	if recs, e = rdr.ReadAll(); e != nil {
		return nil, fmt.Errorf("%s: %w", fileName, e)
	}

	if len(recs) < 1 {
		return nil, fmt.Errorf("%s: no header row", fileName)
	}

	header := recs[0]
	rows := recs[1:]

	var cols []*Col
	for j := 0; j < len(header); j++ {
		raw := make([]string, len(rows))
		for i := 0; i < len(rows); i++ {
			raw[i] = rows[i][j]
		}

		var (
			col *Col
			ec  error
		)
		if col, ec = columnFromStrings(header[j], raw); ec != nil {
			return nil, fmt.Errorf("%s column %s: %w", fileName, header[j], ec)
		}

		cols = append(cols, col)
	}

	return NewFrame(cols...)
}

func columnFromStrings(name string, raw []string) (*Col, error) {
	dt := bestType(raw)

	// an int column with missing cells has to hold NaN, so it widens to float
	if dt == DTint {
		for _, s := range raw {
			if strings.TrimSpace(s) == "" {
				dt = DTfloat
				break
			}
		}
	}

	v := MakeVector(dt, len(raw))
	for ind, s := range raw {
		s = strings.TrimSpace(s)
		switch dt {
		case DTint:
			x, _ := strconv.ParseInt(s, 10, 64)
			v.SetInt(int(x), ind)
		case DTfloat:
			if s == "" {
				v.SetFloat(math.NaN(), ind)
				continue
			}

			x, _ := strconv.ParseFloat(s, 64)
			v.SetFloat(x, ind)
		default:
			v.SetString(s, ind)
		}
	}

	return NewCol(v, dt, ColName(name))
}

// WriteCSV writes the Frame with a header row. NaN and empty-string
// cells serialize as empty cells.
func (f *Frame) WriteCSV(fileName string, opts ...FileOpt) error {
	o := &fileOptions{sep: Sep, header: Header}
	for _, opt := range opts {
		opt(o)
	}

	file, e := os.Create(fileName)
	if e != nil {
		return e
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	w.Comma = o.sep

	if o.header {
		if e := w.Write(f.ColumnNames()); e != nil {
			return e
		}
	}

	rec := make([]string, f.ColumnCount())
	for row := 0; row < f.RowCount(); row++ {
		for j, col := range f.cols {
			rec[j] = cellString(col, row)
		}

		if e := w.Write(rec); e != nil {
			return e
		}
	}

	w.Flush()

	return w.Error()
}

func cellString(col *Col, row int) string {
	switch col.DataType() {
	case DTfloat:
		x := col.ElementFloat(row)
		if math.IsNaN(x) {
			return ""
		}

		// integral values, such as promoted int columns, print without
		// an exponent so spreadsheet readers see plain numbers
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatFloat(x, 'f', -1, 64)
		}

		return strconv.FormatFloat(x, 'g', -1, 64)
	case DTint:
		return strconv.Itoa(col.ElementInt(row))
	case DTdate:
		s, _ := toString(col.Element(row))
		return s.(string)
	default:
		return col.ElementString(row)
	}
}
