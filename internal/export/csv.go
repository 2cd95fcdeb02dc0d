// Package export serializes a dataset to CSV.
package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/worldecon/gdp-cli/internal/model"
)

// WriteCSV writes the dataset to path, overwriting any existing file. The
// header row holds the output column names; there is no index column.
func WriteCSV(ds model.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(model.Columns); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, r := range ds {
		row := []string{r.Country, strconv.FormatFloat(r.GDPBillions, 'f', -1, 64)}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "export: flush")
}
