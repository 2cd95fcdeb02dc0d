// Package model defines the record types flowing through the ETL stages.
package model

// Columns are the output field names, in CSV/table order.
var Columns = []string{"Country", "GDP_USD_billions"}

// Record is one qualifying row as extracted from the source table.
// GDPRaw is the literal cell text, comma-grouped, in USD millions.
type Record struct {
	Country string
	GDPRaw  string
}

// TransformedRecord is a Record after unit conversion to USD billions,
// rounded to two decimal places.
type TransformedRecord struct {
	Country     string
	GDPBillions float64
}

// Dataset is the ordered transformed result of one run. Row order follows
// the source page; duplicate countries are possible if the source has them.
type Dataset []TransformedRecord
