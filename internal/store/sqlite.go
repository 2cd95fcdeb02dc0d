package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/worldecon/gdp-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Replace drops and recreates the table, then inserts the dataset row by
// row. Writes are plain sequential execs: a failure mid-way leaves a partial
// table, matching the sink contract (no atomicity guarantee).
func (s *SQLiteStore) Replace(ctx context.Context, table string, ds model.Dataset) error {
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %q`, table)); err != nil {
		return eris.Wrapf(err, "sqlite: drop table %s", table)
	}

	create := fmt.Sprintf(`CREATE TABLE %q (%q TEXT, %q REAL)`,
		table, model.Columns[0], model.Columns[1])
	if _, err := s.db.ExecContext(ctx, create); err != nil {
		return eris.Wrapf(err, "sqlite: create table %s", table)
	}

	insert := fmt.Sprintf(`INSERT INTO %q (%q, %q) VALUES (?, ?)`,
		table, model.Columns[0], model.Columns[1])
	for _, r := range ds {
		if _, err := s.db.ExecContext(ctx, insert, r.Country, r.GDPBillions); err != nil {
			return eris.Wrapf(err, "sqlite: insert row for %s", r.Country)
		}
	}

	return nil
}

// Select executes the query and scans each row into a TransformedRecord.
// The query's result columns must be (Country, GDP_USD_billions).
func (s *SQLiteStore) Select(ctx context.Context, query string) (model.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query")
	}
	defer rows.Close()

	var ds model.Dataset
	for rows.Next() {
		var r model.TransformedRecord
		if err := rows.Scan(&r.Country, &r.GDPBillions); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan row")
		}
		ds = append(ds, r)
	}
	return ds, eris.Wrap(rows.Err(), "sqlite: iterate rows")
}
