package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/worldecon/gdp-cli/internal/fetcher"
	"github.com/worldecon/gdp-cli/internal/pipeline"
	"github.com/worldecon/gdp-cli/internal/progress"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full ETL and print the filter-query result",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent: cfg.Source.UserAgent,
			Timeout:   time.Duration(cfg.Source.TimeoutSecs) * time.Second,
		})
		j := progress.New(cfg.Journal.Path)

		p := pipeline.New(cfg, f, j)
		result, err := p.Run(ctx)
		if err != nil {
			return eris.Wrap(err, "pipeline run")
		}

		zap.L().Info("etl complete",
			zap.String("source", cfg.Source.URL),
			zap.Int("query_rows", len(result)),
		)

		renderDataset(cmd, result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
