// Package store persists datasets to SQLite and answers read queries.
package store

import (
	"context"

	"github.com/worldecon/gdp-cli/internal/model"
)

// Store defines the database sink used by the pipeline.
type Store interface {
	// Replace drops and recreates the named table with the dataset's rows.
	Replace(ctx context.Context, table string, ds model.Dataset) error

	// Select executes a read query returning (Country, GDP_USD_billions) rows.
	Select(ctx context.Context, query string) (model.Dataset, error)

	Close() error
}
