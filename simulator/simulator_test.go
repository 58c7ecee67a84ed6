package simulator

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"retail-datagen/generator"
	"retail-datagen/models"
	"retail-datagen/utils"
)

func runSimulation(t *testing.T, seed int64, powerCustomers int) ([]*models.Transaction, *Engine) {
	t.Helper()
	days, err := generator.BuildCalendar(
		time.Date(2023, time.November, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.November, 26, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("BuildCalendar: %v", err)
	}

	engine, err := New(testCatalog(), testCustomers(50), days,
		rand.New(rand.NewSource(seed)), Options{
			Policy:             ClassicPolicy(),
			BaseDailyVolume:    100,
			PowerCustomerCount: powerCustomers,
		}, utils.NewLogger(utils.LevelError))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	transactions, err := engine.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return transactions, engine
}

func TestRunTransactionInvariants(t *testing.T) {
	transactions, _ := runSimulation(t, 42, 10)
	if len(transactions) == 0 {
		t.Fatal("no transactions generated")
	}

	for _, tx := range transactions {
		if tx.Quantity < 1 {
			t.Errorf("%s: quantity %d < 1", tx.ID, tx.Quantity)
		}
		if tx.UnitPrice <= 0 {
			t.Errorf("%s: unit price %.2f not positive", tx.ID, tx.UnitPrice)
		}
		want := math.Round(float64(tx.Quantity)*tx.UnitPrice*100) / 100
		if math.Abs(tx.TotalSales-want) > 1e-9 {
			t.Errorf("%s: total %.2f, want %.2f", tx.ID, tx.TotalSales, want)
		}
	}
}

func TestRunChronologicalOrderAndSequentialIDs(t *testing.T) {
	transactions, _ := runSimulation(t, 42, 0)

	if transactions[0].ID != "T000001" {
		t.Errorf("first id: got %s, want T000001", transactions[0].ID)
	}
	for i := 1; i < len(transactions); i++ {
		if transactions[i].Date.Before(transactions[i-1].Date) {
			t.Fatalf("transactions out of chronological order at %s", transactions[i].ID)
		}
	}
}

func TestRunLedgerMatchesAttributedTransactions(t *testing.T) {
	// No power customers: every ledger count must equal the number of
	// transactions attributed to that customer.
	transactions, engine := runSimulation(t, 42, 0)

	perCustomer := make(map[string]int)
	spend := make(map[string]float64)
	for _, tx := range transactions {
		perCustomer[tx.CustomerID]++
		spend[tx.CustomerID] += tx.TotalSales
	}

	for id, h := range engine.Ledger().Entries() {
		if h.OrderCount != perCustomer[id] {
			t.Errorf("%s: ledger count %d, attributed transactions %d", id, h.OrderCount, perCustomer[id])
		}
		if math.Abs(h.TotalSpent-spend[id]) > 1e-6 {
			t.Errorf("%s: ledger spend %.2f, attributed %.2f", id, h.TotalSpent, spend[id])
		}
	}
}

func TestRunFirstPurchaseSnapshotsNewTier(t *testing.T) {
	transactions, _ := runSimulation(t, 42, 0)

	first := make(map[string]bool)
	for _, tx := range transactions {
		if !first[tx.CustomerID] {
			first[tx.CustomerID] = true
			if tx.LoyaltyTier != models.TierNew {
				t.Errorf("%s: first purchase of %s recorded as %s, want New",
					tx.ID, tx.CustomerID, tx.LoyaltyTier)
			}
		}
	}
}

func TestRunTierSnapshotsNeverRegress(t *testing.T) {
	transactions, _ := runSimulation(t, 42, 10)

	rank := map[models.LoyaltyTier]int{
		models.TierNew: 0, models.TierBronze: 1, models.TierSilver: 2, models.TierGold: 3,
	}
	last := make(map[string]int)
	for _, tx := range transactions {
		r := rank[tx.LoyaltyTier]
		if prev, ok := last[tx.CustomerID]; ok && r < prev {
			t.Fatalf("%s: tier regressed for %s", tx.ID, tx.CustomerID)
		}
		last[tx.CustomerID] = r
	}
}

func TestRunDeterministicForFixedSeed(t *testing.T) {
	a, _ := runSimulation(t, 42, 10)
	b, _ := runSimulation(t, 42, 10)

	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if *a[i] != *b[i] {
			t.Fatalf("runs diverged at %s: %+v vs %+v", a[i].ID, a[i], b[i])
		}
	}
}

func TestRunDailyVolumeFloorHolds(t *testing.T) {
	transactions, _ := runSimulation(t, 42, 0)

	perDay := make(map[string]int)
	for _, tx := range transactions {
		perDay[tx.Date.Format("2006-01-02")]++
	}
	if len(perDay) != 7 {
		t.Fatalf("expected 7 simulated days, got %d", len(perDay))
	}
	for day, n := range perDay {
		if n < minDailyVolume {
			t.Errorf("%s: %d transactions, below floor %d", day, n, minDailyVolume)
		}
	}
}

func TestNewRejectsEmptyInputs(t *testing.T) {
	days, err := generator.BuildCalendar(
		time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("BuildCalendar: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	logger := utils.NewLogger(utils.LevelError)
	opts := Options{Policy: ClassicPolicy(), BaseDailyVolume: 100}

	if _, err := New(nil, testCustomers(5), days, rng, opts, logger); err == nil {
		t.Error("expected error for empty catalog")
	}
	if _, err := New(testCatalog(), nil, days, rng, opts, logger); err == nil {
		t.Error("expected error for empty roster")
	}
	if _, err := New(testCatalog(), testCustomers(5), nil, rng, opts, logger); err == nil {
		t.Error("expected error for empty calendar")
	}
}
