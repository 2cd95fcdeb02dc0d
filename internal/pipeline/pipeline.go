// Package pipeline runs the ETL stages in order: fetch, extract, transform,
// load to CSV and SQLite, filter query.
package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/worldecon/gdp-cli/internal/config"
	"github.com/worldecon/gdp-cli/internal/export"
	"github.com/worldecon/gdp-cli/internal/extract"
	"github.com/worldecon/gdp-cli/internal/fetcher"
	"github.com/worldecon/gdp-cli/internal/model"
	"github.com/worldecon/gdp-cli/internal/progress"
	"github.com/worldecon/gdp-cli/internal/store"
	"github.com/worldecon/gdp-cli/internal/transform"
)

// Pipeline wires the ETL stages. Each run is one-shot: the dataset is built
// in memory, written to both sinks, queried once, and discarded.
type Pipeline struct {
	cfg     *config.Config
	fetcher fetcher.Fetcher
	journal *progress.Journal
}

// New creates a Pipeline from config, fetcher, and journal.
func New(cfg *config.Config, f fetcher.Fetcher, j *progress.Journal) *Pipeline {
	return &Pipeline{cfg: cfg, fetcher: f, journal: j}
}

// FilterQuery builds the post-load filter query for the configured table and
// threshold.
func FilterQuery(table string, minBillions float64) string {
	return fmt.Sprintf(`SELECT * FROM %q WHERE %q >= %s`,
		table, model.Columns[1], strconv.FormatFloat(minBillions, 'f', -1, 64))
}

// Run executes the full ETL and returns the filter-query rows. Any stage
// failure propagates; the journal then ends without its terminal entry.
func (p *Pipeline) Run(ctx context.Context) (model.Dataset, error) {
	p.journal.Log("Preliminaries complete. Initiating ETL process")

	body, err := p.fetcher.FetchPage(ctx, p.cfg.Source.URL)
	if err != nil {
		return nil, err
	}

	records, err := extract.Records(body, extract.DefaultOptions())
	if err != nil {
		return nil, err
	}
	p.journal.Log("Data extraction complete. Initiating Transformation process")
	zap.L().Info("extraction complete",
		zap.String("url", p.cfg.Source.URL),
		zap.Int("rows", len(records)),
	)

	ds, err := transform.Billions(records)
	if err != nil {
		return nil, err
	}
	p.journal.Log("Data transformation complete. Initiating loading process")

	if err := export.WriteCSV(ds, p.cfg.Output.CSVPath); err != nil {
		return nil, err
	}
	p.journal.Log("Data saved to CSV file")

	st, err := store.NewSQLite(p.cfg.Store.DBPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	p.journal.Log("SQL Connection initiated.")

	if err := st.Replace(ctx, p.cfg.Store.TableName, ds); err != nil {
		return nil, err
	}
	p.journal.Log("Data loaded to Database as table. Running the query")

	result, err := st.Select(ctx, FilterQuery(p.cfg.Store.TableName, p.cfg.Query.MinBillions))
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: filter query")
	}
	zap.L().Info("load complete",
		zap.Int("rows", len(ds)),
		zap.Int("query_rows", len(result)),
		zap.String("csv", p.cfg.Output.CSVPath),
		zap.String("table", p.cfg.Store.TableName),
	)

	p.journal.Log("Process Complete.")
	return result, nil
}
