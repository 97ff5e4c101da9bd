package pipeline

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/stdlib"

	frame "github.com/statejoin/statejoin"
)

// RunInfo summarizes a completed run.
type RunInfo struct {
	ID      string
	Rows    int
	Columns int
	Output  string
}

// Run executes the whole pipeline: load the six sources, fold the five
// left joins over the hate-crime base in their fixed order, derive the
// two per-capita features, write the CSV and optionally save to the
// warehouse. File-level problems abort; cell-level problems became NaN
// upstream and flow through.
func Run(cfg Config) (*RunInfo, error) {
	runID := uuid.NewString()
	log.Printf("run %s: starting", runID)

	base, e := LoadHateCrimes(cfg.HateCrimes)
	if e != nil {
		return nil, e
	}

	log.Printf("run %s: hate crimes: %d rows, %d columns", runID, base.RowCount(), base.ColumnCount())

	stages := []struct {
		name string
		load func(string) (*frame.Frame, error)
		path string
	}{
		{"reporting", LoadReporting, cfg.Reporting},
		{"population", LoadPopulation, cfg.Population},
		{"legal", LoadLegal, cfg.Legal},
		{"social", LoadSocial, cfg.Social},
		{"news", AggregateNews, cfg.News},
	}

	for _, stage := range stages {
		var right *frame.Frame
		if right, e = stage.load(stage.path); e != nil {
			return nil, fmt.Errorf("%s: %w", stage.name, e)
		}

		if n := base.UnmatchedKeys(right, KeyState); n > 0 {
			log.Printf("run %s: %s: %d states with no match", runID, stage.name, n)
		}

		if base, e = base.LeftJoin(right, KeyState); e != nil {
			return nil, fmt.Errorf("%s: %w", stage.name, e)
		}

		log.Printf("run %s: joined %s: %d rows, %d columns", runID, stage.name, base.RowCount(), base.ColumnCount())
	}

	if e = RatioColumn(base, ColPerCapita, ColLGBTQCrimes, ColPopulationCovered); e != nil {
		return nil, e
	}

	if e = RatioColumn(base, ColPerLGBTQCapita, ColLGBTQCrimes, ColLGBTAdults); e != nil {
		return nil, e
	}

	if e = base.WriteCSV(cfg.Output); e != nil {
		return nil, e
	}

	log.Printf("run %s: wrote %s", runID, cfg.Output)

	if cfg.Warehouse.DSN != "" {
		if e = saveWarehouse(cfg.Warehouse, base); e != nil {
			return nil, e
		}

		log.Printf("run %s: saved %s to %s", runID, cfg.Warehouse.Table, cfg.Warehouse.Driver)
	}

	return &RunInfo{
		ID:      runID,
		Rows:    base.RowCount(),
		Columns: base.ColumnCount(),
		Output:  cfg.Output,
	}, nil
}

func saveWarehouse(w Warehouse, f *frame.Frame) error {
	var driverName string
	switch w.Driver {
	case "clickhouse":
		driverName = "clickhouse"
	case "postgres":
		driverName = "pgx"
	default:
		return fmt.Errorf("unsupported warehouse driver %s", w.Driver)
	}

	db, e := sql.Open(driverName, w.DSN)
	if e != nil {
		return e
	}

	var d *frame.Dialect
	if d, e = frame.NewDialect(w.Driver, db); e != nil {
		_ = db.Close()
		return e
	}
	defer func() { _ = d.Close() }()

	return d.Save(f, w.Table, w.Overwrite)
}
