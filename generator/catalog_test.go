package generator

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestBuildCatalogSize(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	catalog, err := BuildCatalog(rng, 15)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	want := len(Subcategories) * 15
	if len(catalog) != want {
		t.Errorf("catalog size: got %d, want %d", len(catalog), want)
	}
}

func TestBuildCatalogAttributes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	catalog, err := BuildCatalog(rng, 15)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	for _, p := range catalog {
		if p.BasePrice < basePriceMin || p.BasePrice > basePriceMax {
			t.Errorf("%s: base price %.2f outside [%.0f, %.0f]", p.ID, p.BasePrice, basePriceMin, basePriceMax)
		}
		wantCost := math.Round(p.BasePrice*0.6*100) / 100
		if math.Abs(p.CostPrice-wantCost) > 1e-9 {
			t.Errorf("%s: cost price %.2f, want %.2f", p.ID, p.CostPrice, wantCost)
		}
		if p.PopularityFactor < 1 || p.PopularityFactor > 10 {
			t.Errorf("%s: popularity %d outside [1, 10]", p.ID, p.PopularityFactor)
		}
		if p.StockLevel < 15 || p.StockLevel > 80 {
			t.Errorf("%s: stock %d outside [15, 80]", p.ID, p.StockLevel)
		}
		if !strings.HasPrefix(p.ID, "P") || len(p.ID) != 5 {
			t.Errorf("bad product id %q", p.ID)
		}
		if !strings.Contains(p.Name, p.Brand) {
			t.Errorf("%s: name %q missing brand %q", p.ID, p.Name, p.Brand)
		}
	}
}

func TestBuildCatalogSequentialIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	catalog, err := BuildCatalog(rng, 3)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	if catalog[0].ID != "P0001" {
		t.Errorf("first id: got %s, want P0001", catalog[0].ID)
	}
	if last := catalog[len(catalog)-1].ID; last != "P0018" {
		t.Errorf("last id: got %s, want P0018", last)
	}
}

func TestBuildCatalogRejectsNonPositiveCount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	if _, err := BuildCatalog(rng, 0); err == nil {
		t.Error("expected error for zero products per subcategory")
	}
}
