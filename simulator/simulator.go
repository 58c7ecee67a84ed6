// Package simulator implements the transaction simulation engine: for each
// calendar day it determines a transaction volume, then repeatedly samples
// a customer (history-weighted), a product (segment-weighted), a quantity
// and a discounted unit price, updating the customer-history ledger after
// every emitted transaction.
package simulator

import (
	"fmt"
	"math/rand"

	"retail-datagen/models"
	"retail-datagen/utils"
)

// Engine owns all simulation state for one run. It is strictly sequential:
// every customer draw depends on the globally current ledger, so splitting
// days across goroutines would read stale history and change the output
// distribution, not just its order.
type Engine struct {
	catalog    []*models.Product
	roster     []*models.Customer
	calendar   []*models.DateInfo
	byCategory map[string][]*models.Product

	ledger     *Ledger
	rng        *rand.Rand
	policy     Policy
	baseVolume int
	powerCount int

	weights []float64 // per-customer scratch buffer, reused across draws

	logger *utils.Logger
}

// Options carries the tunables the engine needs beyond its input tables.
type Options struct {
	Policy             Policy
	BaseDailyVolume    int
	PowerCustomerCount int
}

// New validates the input tables and builds an Engine. The rand source is
// owned by the caller so that seed + config fully determine the output.
func New(catalog []*models.Product, roster []*models.Customer, calendar []*models.DateInfo,
	rng *rand.Rand, opts Options, logger *utils.Logger) (*Engine, error) {

	if len(catalog) == 0 {
		return nil, fmt.Errorf("simulator: empty product catalog")
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("simulator: empty customer roster")
	}
	if len(calendar) == 0 {
		return nil, fmt.Errorf("simulator: empty calendar")
	}
	if opts.BaseDailyVolume <= 0 {
		return nil, fmt.Errorf("simulator: base daily volume must be positive, got %d", opts.BaseDailyVolume)
	}

	byCategory := make(map[string][]*models.Product)
	for _, p := range catalog {
		byCategory[p.Subcategory] = append(byCategory[p.Subcategory], p)
	}

	return &Engine{
		catalog:    catalog,
		roster:     roster,
		calendar:   calendar,
		byCategory: byCategory,
		ledger:     NewLedger(roster),
		rng:        rng,
		policy:     opts.Policy,
		baseVolume: opts.BaseDailyVolume,
		powerCount: opts.PowerCustomerCount,
		weights:    make([]float64, len(roster)),
		logger:     logger,
	}, nil
}

// Ledger exposes the engine's history ledger for reporting and validation.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Run executes the full simulation and returns every transaction in
// chronological order (by day, then by generation order within the day).
func (e *Engine) Run() ([]*models.Transaction, error) {
	e.ledger.SeedPowerCustomers(e.rng, e.roster, e.powerCount)

	var transactions []*models.Transaction
	txID := 1

	for i, day := range e.calendar {
		volume := dailyVolume(e.rng, day, e.baseVolume, e.policy)

		for t := 0; t < volume; t++ {
			customer := e.selectCustomer(day)
			product := e.selectProduct(customer, day)
			qty := e.quantity(product, customer)
			price := e.unitPrice(product, customer, day)
			total := utils.Round2(float64(qty) * price)

			// Tier snapshot happens before the history update, so a
			// customer's first purchase is recorded as "New".
			history, ok := e.ledger.Get(customer.ID)
			if !ok {
				return nil, fmt.Errorf("simulator: customer %s missing from ledger", customer.ID)
			}
			tier := history.Loyalty

			if err := e.ledger.RecordOrder(customer.ID, total, day.Date); err != nil {
				return nil, err
			}

			transactions = append(transactions, &models.Transaction{
				ID:          fmt.Sprintf("T%06d", txID),
				Date:        day.Date,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    qty,
				UnitPrice:   price,
				TotalSales:  total,
				CustomerID:  customer.ID,
				City:        customer.City,
				LoyaltyTier: tier,
			})
			txID++
		}

		if i%30 == 0 {
			e.logger.Debug("[simulator] Processed %d/%d days, %d transactions so far",
				i+1, len(e.calendar), len(transactions))
		}
	}

	e.logger.Info("[simulator] Generated %d transactions over %d days (policy: %s)",
		len(transactions), len(e.calendar), e.policy.Name)
	return transactions, nil
}
