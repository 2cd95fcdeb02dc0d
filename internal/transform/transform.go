// Package transform converts raw GDP strings from USD millions to rounded
// USD billions.
package transform

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"github.com/worldecon/gdp-cli/internal/model"
)

// ErrNotNumeric reports a GDP value that is not numeric after cleanup.
var ErrNotNumeric = eris.New("transform: gdp value is not numeric")

var thousand = decimal.NewFromInt(1000)

// Billions converts each record's comma-grouped millions figure to billions,
// rounded to two decimal places with ties going away from zero. Pure
// function: the input slice is not modified.
func Billions(records []model.Record) (model.Dataset, error) {
	ds := make(model.Dataset, 0, len(records))
	for _, r := range records {
		cleaned := strings.ReplaceAll(strings.TrimSpace(r.GDPRaw), ",", "")
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return nil, eris.Wrapf(ErrNotNumeric, "transform: parse gdp %q for %s", r.GDPRaw, r.Country)
		}
		ds = append(ds, model.TransformedRecord{
			Country:     r.Country,
			GDPBillions: d.Div(thousand).Round(2).InexactFloat64(),
		})
	}
	return ds, nil
}
