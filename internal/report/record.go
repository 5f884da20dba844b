// Package report turns a tokenized sales export into an aggregate summary.
//
// The pipeline is a single linear pass: rows are zipped with the header row
// into records, records fold into an Accumulator, and Summarize derives the
// immutable Summary consumed by the HTTP API and CLI. No state survives a
// summarization call; loading a new file replaces the previous summary
// wholesale.
package report

import (
	"winereport/internal/csv"
)

// Column names recognized in the export header, lowercased for
// case-insensitive matching. Missing columns degrade to the coercers'
// neutral defaults.
const (
	colOrderNumber   = "order number"
	colCompletedDate = "completed date"
	colPickup        = "pickup"
	colOrderType     = "order type"
	colShipState     = "ship state code"
	colCustomer      = "customer number"
	colQuantity      = "quantity sold"
	colItemPrice     = "ext item price"
	colItemTotal     = "ext item total"
	colItemTaxes     = "ext item taxes"
	colItemShipping  = "ext item shipping"
	colProductSKU    = "product sku"
	colReorderSKU    = "reorder sku"
	colProductName   = "product name"
)

// Record maps lowercased column names to raw cell values for one line item.
// Records are ephemeral: built per row and discarded once folded in.
type Record map[string]string

// Field returns the raw value for a column, or "" if the column is absent.
func (r Record) Field(name string) string {
	return r[name]
}

// Records zips the header row with every following row into records,
// in file order. The first row is always treated as the header. Fully
// blank rows (trailing newlines, spacer lines) are dropped.
func Records(rows [][]string) []Record {
	if len(rows) < 2 {
		return nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = csv.CleanHeader(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if csv.IsBlankRow(row) {
			continue
		}
		rec := make(Record, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				rec[key] = csv.CleanCell(row[i])
			}
		}
		records = append(records, rec)
	}
	return records
}
