package shared

import "github.com/shopspring/decimal"

// Prices and totals go over the wire as JSON numbers, not quoted
// strings; clients compare them numerically.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
