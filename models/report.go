package models

import "time"

// MonthRevenue is one row of the monthly revenue breakdown.
type MonthRevenue struct {
	Month   string // "2023-07"
	Revenue float64
}

// ProductRevenue is one row of the top-products ranking.
type ProductRevenue struct {
	ProductName string
	Revenue     float64
}

// SummaryReport holds the aggregates computed over the transaction table.
type SummaryReport struct {
	TotalTransactions int
	TotalRevenue      float64
	AverageOrderValue float64
	MinSale           float64
	MaxSale           float64
	UniqueCustomers   int
	UniqueProducts    int
	FirstDate         time.Time
	LastDate          time.Time
	MonthlyRevenue    []MonthRevenue
	TopProducts       []ProductRevenue
}

// ValidationReport is the data-quality check run over the generated tables
// before export.
type ValidationReport struct {
	Records              int
	NegativeQuantities   int
	NegativePrices       int
	NegativeTotals       int
	ZeroPrices           int
	DuplicateIDs         int
	MinQuantity          int
	MaxQuantity          int
	MinUnitPrice         float64
	MaxUnitPrice         float64
	FirstDate            time.Time
	LastDate             time.Time
	SeededHistoryEntries int // ledger counts exceeding attributed transactions (power customers)
}

// Clean reports whether no hard invariant was violated. Seeded history
// entries are a known quirk, not a failure.
func (r *ValidationReport) Clean() bool {
	return r.NegativeQuantities == 0 &&
		r.NegativePrices == 0 &&
		r.NegativeTotals == 0 &&
		r.ZeroPrices == 0 &&
		r.DuplicateIDs == 0
}

// DictionaryEntry documents one column of the transactions table.
type DictionaryEntry struct {
	Field       string
	Type        string
	Description string
	Example     string
}
