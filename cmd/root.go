package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/worldecon/gdp-cli/internal/config"
	"github.com/worldecon/gdp-cli/internal/model"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "gdp-cli",
	Short: "Countries-by-GDP ETL",
	Long:  "Extracts the countries-by-nominal-GDP table from an archived Wikipedia snapshot, converts figures to USD billions, and loads them to CSV and SQLite.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// renderDataset prints dataset rows as a terminal table.
func renderDataset(cmd *cobra.Command, ds model.Dataset) {
	t := tablewriter.NewWriter(cmd.OutOrStdout())
	t.SetHeader(model.Columns)
	for _, r := range ds {
		t.Append([]string{r.Country, strconv.FormatFloat(r.GDPBillions, 'f', 2, 64)})
	}
	t.Render()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
