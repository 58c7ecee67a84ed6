package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"retail-datagen/models"
	"retail-datagen/utils"
)

// Ledger tracks the evolving purchase history of every customer during a
// run. The engine is its only writer; each transaction touches it exactly
// once, so no locking is needed while the simulation stays sequential.
type Ledger struct {
	entries map[string]*models.CustomerHistory
}

// NewLedger creates a zeroed history entry for every customer.
func NewLedger(customers []*models.Customer) *Ledger {
	entries := make(map[string]*models.CustomerHistory, len(customers))
	for _, c := range customers {
		entries[c.ID] = &models.CustomerHistory{Loyalty: models.TierNew}
	}
	return &Ledger{entries: entries}
}

// TierForOrders derives the loyalty tier from a cumulative order count.
// Thresholds: Bronze at 1, Silver at 5, Gold at 10.
func TierForOrders(n int) models.LoyaltyTier {
	switch {
	case n >= 10:
		return models.TierGold
	case n >= 5:
		return models.TierSilver
	case n >= 1:
		return models.TierBronze
	default:
		return models.TierNew
	}
}

// Get returns the history entry for a customer id.
func (l *Ledger) Get(id string) (*models.CustomerHistory, bool) {
	h, ok := l.entries[id]
	return h, ok
}

// Entries exposes the full ledger for reporting and validation. Callers
// must not mutate it.
func (l *Ledger) Entries() map[string]*models.CustomerHistory {
	return l.entries
}

// RecordOrder applies one finalized transaction to a customer's history.
// The caller must snapshot the tier *before* calling this, so a first
// purchase is attributed to a "New" customer. An unknown id is a logic
// error, never clamped.
func (l *Ledger) RecordOrder(customerID string, amount float64, date time.Time) error {
	h, ok := l.entries[customerID]
	if !ok {
		return fmt.Errorf("simulator: ledger has no entry for customer %s", customerID)
	}
	h.OrderCount++
	h.TotalSpent += amount
	h.LastPurchase = &date
	h.Loyalty = TierForOrders(h.OrderCount)
	return nil
}

// SeedPowerCustomers fabricates prior history for count random customers so
// higher loyalty tiers show up despite the short simulation window. The
// fabricated orders have no backing transactions; the validation report
// flags them rather than reconciling.
func (l *Ledger) SeedPowerCustomers(rng *rand.Rand, customers []*models.Customer, count int) {
	if count > len(customers) {
		count = len(customers)
	}
	for _, idx := range rng.Perm(len(customers))[:count] {
		h := l.entries[customers[idx].ID]
		h.OrderCount = utils.IntRange(rng, 2, 15)
		h.TotalSpent = float64(utils.IntRange(rng, 500, 5000))
		h.Loyalty = TierForOrders(h.OrderCount)
	}
}
