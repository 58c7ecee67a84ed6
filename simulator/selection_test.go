package simulator

import (
	"math/rand"
	"testing"
	"time"

	"retail-datagen/models"
	"retail-datagen/utils"
)

func TestSelectProductFallsBackToFullCatalog(t *testing.T) {
	// Catalog containing only laptops: Budget customers prefer accessories
	// and smartwatches, neither of which exists.
	catalog := []*models.Product{
		{ID: "P0001", Name: "Laptop A", Subcategory: "laptops", BasePrice: 800},
		{ID: "P0002", Name: "Laptop B", Subcategory: "laptops", BasePrice: 900},
	}
	day := calendarDay(t, 2023, time.July, 1)
	engine, err := New(catalog, testCustomers(5), []*models.DateInfo{day},
		rand.New(rand.NewSource(42)), Options{Policy: ClassicPolicy(), BaseDailyVolume: 100},
		utils.NewLogger(utils.LevelError))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	budget := &models.Customer{ID: "C0001", Segment: models.SegmentBudget}
	for i := 0; i < 200; i++ {
		p := engine.selectProduct(budget, day)
		if p == nil {
			t.Fatal("selectProduct returned nil")
		}
		if p.Subcategory != "laptops" {
			t.Fatalf("unexpected subcategory %q", p.Subcategory)
		}
	}
}

func TestSelectProductHonoursSegmentPreferences(t *testing.T) {
	day := calendarDay(t, 2023, time.October, 1)
	engine := newTestEngine(t, ClassicPolicy(), 42, []*models.DateInfo{day})

	premium := &models.Customer{ID: "C0001", Segment: models.SegmentPremium}
	allowed := map[string]bool{"smartphones": true, "laptops": true, "cameras": true}

	for i := 0; i < 500; i++ {
		p := engine.selectProduct(premium, day)
		if !allowed[p.Subcategory] {
			t.Fatalf("premium customer drew %q outside preference list", p.Subcategory)
		}
	}
}

func TestSelectCustomerFavoursRepeatBuyers(t *testing.T) {
	day := calendarDay(t, 2023, time.October, 1)
	engine := newTestEngine(t, ClassicPolicy(), 42, []*models.DateInfo{day})

	// Give one customer heavy history; everyone shares the Regular base
	// weight, so the history multiplier dominates.
	heavy := engine.roster[3].ID
	for i := 0; i < 10; i++ {
		if err := engine.ledger.RecordOrder(heavy, 100, day.Date); err != nil {
			t.Fatalf("RecordOrder: %v", err)
		}
	}

	counts := make(map[string]int)
	for i := 0; i < 5000; i++ {
		counts[engine.selectCustomer(day).ID]++
	}

	// heavy carries 5× the weight of each of the other 19 customers, so it
	// should be the single most-drawn customer by a wide margin.
	for id, n := range counts {
		if id != heavy && n >= counts[heavy] {
			t.Fatalf("customer %s drawn %d times, heavy buyer %s only %d", id, n, heavy, counts[heavy])
		}
	}
}

func TestSelectCustomerDeterministic(t *testing.T) {
	day := calendarDay(t, 2023, time.December, 1)

	a := newTestEngine(t, ClassicPolicy(), 11, []*models.DateInfo{day})
	b := newTestEngine(t, ClassicPolicy(), 11, []*models.DateInfo{day})
	for i := 0; i < 200; i++ {
		if a.selectCustomer(day).ID != b.selectCustomer(day).ID {
			t.Fatal("same seed produced diverging customer draws")
		}
	}
}

func TestPriceRankedPickPrefersPricierHalfForPremium(t *testing.T) {
	day := calendarDay(t, 2023, time.October, 1)
	engine := newTestEngine(t, ExtendedPolicy(), 42, []*models.DateInfo{day})

	pool := []*models.Product{
		{ID: "P0001", BasePrice: 100},
		{ID: "P0002", BasePrice: 200},
		{ID: "P0003", BasePrice: 300},
		{ID: "P0004", BasePrice: 400},
	}

	expensive := 0
	const draws = 4000
	for i := 0; i < draws; i++ {
		p := engine.priceRankedPick(pool, models.SegmentPremium)
		if p.BasePrice >= 300 {
			expensive++
		}
	}

	// Pricier half carries weight 1.5 vs 1.0 → expected share 0.6.
	ratio := float64(expensive) / draws
	if ratio < 0.55 || ratio > 0.65 {
		t.Errorf("pricier-half share = %.3f, want ≈0.60", ratio)
	}
}
