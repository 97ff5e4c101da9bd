package frame

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
)

// All code interacting with a database is here. A Dialect can save any
// Frame to a warehouse table; the pipeline itself never reads one back.

const (
	ch = "clickhouse"
	pg = "postgres"
)

const (
	chCreate = "CREATE TABLE ?TableName (?fields) ENGINE = MergeTree() ORDER BY ?OrderBy"
	pgCreate = "CREATE TABLE ?TableName (?fields)"

	chDropIf = "DROP TABLE IF EXISTS ?TableName"
	pgDropIf = "DROP TABLE IF EXISTS ?TableName"
)

type Dialect struct {
	db      *sql.DB
	dialect string

	create string
	dropIf string

	dbTypes map[DataTypes]string
}

func NewDialect(dialect string, db *sql.DB) (*Dialect, error) {
	dialect = strings.ToLower(dialect)

	d := &Dialect{db: db, dialect: dialect}

	switch dialect {
	case ch:
		d.create, d.dropIf = chCreate, chDropIf
		d.dbTypes = map[DataTypes]string{
			DTfloat:  "Float64",
			DTint:    "Int64",
			DTstring: "String",
			DTdate:   "Date",
		}
	case pg:
		d.create, d.dropIf = pgCreate, pgDropIf
		d.dbTypes = map[DataTypes]string{
			DTfloat:  "DOUBLE PRECISION",
			DTint:    "BIGINT",
			DTstring: "TEXT",
			DTdate:   "DATE",
		}
	default:
		return nil, fmt.Errorf("no dialect for database %s", dialect)
	}

	return d, nil
}

// ***************** Methods *****************

func (d *Dialect) DialectName() string {
	return d.dialect
}

func (d *Dialect) Close() error {
	return d.db.Close()
}

func (d *Dialect) Exists(tableName string) bool {
	rows, e := d.db.Query(fmt.Sprintf("SELECT * FROM %s WHERE 1=0", tableName))
	if e != nil {
		return false
	}

	_ = rows.Close()

	return true
}

// Save creates the table from the Frame's column types and inserts every
// row. With overwrite, an existing table is dropped first.
func (d *Dialect) Save(f *Frame, tableName string, overwrite bool) error {
	if d.Exists(tableName) {
		if !overwrite {
			return fmt.Errorf("table %s exists", tableName)
		}

		drop := strings.ReplaceAll(d.dropIf, "?TableName", tableName)
		if _, e := d.db.Exec(drop); e != nil {
			return e
		}
	}

	var (
		createSQL string
		e         error
	)
	if createSQL, e = d.createSQL(f, tableName); e != nil {
		return e
	}

	if _, e = d.db.Exec(createSQL); e != nil {
		return e
	}

	var insertSQL string
	if insertSQL, e = d.insertSQL(f, tableName); e != nil {
		return e
	}

	_, e = d.db.Exec(insertSQL)

	return e
}

func (d *Dialect) createSQL(f *Frame, tableName string) (string, error) {
	var flds []string
	for _, nm := range f.ColumnNames() {
		col := f.Column(nm)

		dbType, ok := d.dbTypes[col.DataType()]
		if !ok {
			return "", fmt.Errorf("no %s type for %s", d.dialect, col.DataType())
		}

		// NaN-bearing floats need a nullable cell
		if col.DataType() == DTfloat {
			if d.dialect == ch {
				dbType = "Nullable(Float64)"
			}
		}

		flds = append(flds, fmt.Sprintf("%s %s", nm, dbType))
	}

	create := strings.ReplaceAll(d.create, "?TableName", tableName)
	create = strings.Replace(create, "?fields", strings.Join(flds, ", "), 1)
	create = strings.Replace(create, "?OrderBy", f.ColumnNames()[0], 1)

	if strings.Contains(create, "?") {
		return "", fmt.Errorf("create still has placeholders: %s", create)
	}

	return create, nil
}

func (d *Dialect) insertSQL(f *Frame, tableName string) (string, error) {
	if f.RowCount() == 0 {
		return "", fmt.Errorf("nothing to insert into %s", tableName)
	}

	var rows []string
	for row := 0; row < f.RowCount(); row++ {
		var vals []string
		for _, col := range f.cols {
			vals = append(vals, sqlLiteral(col, row))
		}

		rows = append(rows, "("+strings.Join(vals, ", ")+")")
	}

	ins := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		tableName, strings.Join(f.ColumnNames(), ", "), strings.Join(rows, ", "))

	return ins, nil
}

func sqlLiteral(col *Col, row int) string {
	switch col.DataType() {
	case DTfloat:
		x := col.ElementFloat(row)
		if math.IsNaN(x) {
			return "NULL"
		}

		return fmt.Sprintf("%v", x)
	case DTint:
		return fmt.Sprintf("%d", col.ElementInt(row))
	default:
		return "'" + strings.ReplaceAll(col.ElementString(row), "'", "''") + "'"
	}
}
