package services

import (
	"fmt"
	"strings"

	"retail-datagen/models"
	"retail-datagen/simulator"
	"retail-datagen/utils"
)

// Validator runs data-quality checks over the generated transaction table
// and the final history ledger.
type Validator struct {
	logger *utils.Logger
}

func NewValidator(logger *utils.Logger) *Validator {
	return &Validator{logger: logger}
}

// Check scans transactions for invariant violations and counts the
// power-customer ledger entries whose order counts exceed their attributed
// transactions (fabricated pre-history, a known quirk of the generator).
func (v *Validator) Check(transactions []*models.Transaction, ledger *simulator.Ledger) *models.ValidationReport {
	report := &models.ValidationReport{Records: len(transactions)}
	if len(transactions) == 0 {
		return report
	}

	report.MinQuantity = transactions[0].Quantity
	report.MaxQuantity = transactions[0].Quantity
	report.MinUnitPrice = transactions[0].UnitPrice
	report.MaxUnitPrice = transactions[0].UnitPrice
	report.FirstDate = transactions[0].Date
	report.LastDate = transactions[0].Date

	seen := make(map[string]struct{}, len(transactions))
	perCustomer := make(map[string]int)

	for _, t := range transactions {
		if t.Quantity < 0 {
			report.NegativeQuantities++
		}
		if t.UnitPrice < 0 {
			report.NegativePrices++
		}
		if t.UnitPrice == 0 {
			report.ZeroPrices++
		}
		if t.TotalSales < 0 {
			report.NegativeTotals++
		}
		if _, dup := seen[t.ID]; dup {
			report.DuplicateIDs++
		}
		seen[t.ID] = struct{}{}
		perCustomer[t.CustomerID]++

		if t.Quantity < report.MinQuantity {
			report.MinQuantity = t.Quantity
		}
		if t.Quantity > report.MaxQuantity {
			report.MaxQuantity = t.Quantity
		}
		if t.UnitPrice < report.MinUnitPrice {
			report.MinUnitPrice = t.UnitPrice
		}
		if t.UnitPrice > report.MaxUnitPrice {
			report.MaxUnitPrice = t.UnitPrice
		}
		if t.Date.Before(report.FirstDate) {
			report.FirstDate = t.Date
		}
		if t.Date.After(report.LastDate) {
			report.LastDate = t.Date
		}
	}

	if ledger != nil {
		for id, h := range ledger.Entries() {
			if h.OrderCount > perCustomer[id] {
				report.SeededHistoryEntries++
			}
		}
	}

	return report
}

// Print renders the validation report to the console.
func (v *Validator) Print(r *models.ValidationReport) {
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;33m  Data Validation Report\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Records checked        : %d\n", r.Records)
	fmt.Printf("  Negative quantities    : %d\n", r.NegativeQuantities)
	fmt.Printf("  Negative prices        : %d\n", r.NegativePrices)
	fmt.Printf("  Zero prices            : %d\n", r.ZeroPrices)
	fmt.Printf("  Negative totals        : %d\n", r.NegativeTotals)
	fmt.Printf("  Duplicate IDs          : %d\n", r.DuplicateIDs)
	fmt.Printf("  Quantity range         : %d to %d\n", r.MinQuantity, r.MaxQuantity)
	fmt.Printf("  Unit price range       : $%.2f to $%.2f\n", r.MinUnitPrice, r.MaxUnitPrice)
	if r.Records > 0 {
		fmt.Printf("  Date range             : %s to %s\n",
			r.FirstDate.Format("2006-01-02"), r.LastDate.Format("2006-01-02"))
	}
	fmt.Printf("  Seeded power histories : %d (fabricated pre-run orders, expected)\n",
		r.SeededHistoryEntries)

	if r.Clean() {
		fmt.Printf("  Result                 : \033[1;32mPASS\033[0m\n\n")
	} else {
		fmt.Printf("  Result                 : \033[1;31mFAIL\033[0m\n\n")
	}
}
