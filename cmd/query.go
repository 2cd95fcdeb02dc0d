package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/worldecon/gdp-cli/internal/pipeline"
	"github.com/worldecon/gdp-cli/internal/store"
)

var querySQL string

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a read query against the loaded database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := store.NewSQLite(cfg.Store.DBPath)
		if err != nil {
			return eris.Wrap(err, "open store")
		}
		defer st.Close()

		sqlText := querySQL
		if sqlText == "" {
			sqlText = pipeline.FilterQuery(cfg.Store.TableName, cfg.Query.MinBillions)
		}

		result, err := st.Select(ctx, sqlText)
		if err != nil {
			return eris.Wrap(err, "query")
		}

		renderDataset(cmd, result)
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&querySQL, "sql", "", "query to run (defaults to the configured filter query)")
	rootCmd.AddCommand(queryCmd)
}
