package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"retail-datagen/models"
	"retail-datagen/utils"
)

// Subcategories is the fixed set of product lines the retailer carries.
var Subcategories = []string{
	"smartphones", "laptops", "tablets", "accessories", "smartwatches", "cameras",
}

// Brands is the fixed brand pool products are drawn from.
var Brands = []string{
	"Apple", "Samsung", "Sony", "Dell", "HP", "Lenovo", "Microsoft", "Google",
}

var modelSuffixes = []string{"Pro", "Plus", "Max", "Mini", "SE"}

const (
	basePriceMin = 200.0
	basePriceMax = 1200.0
	costRatio    = 0.6
)

// BuildCatalog generates perSubcategory products for every subcategory.
// IDs are sequential across the whole catalog (P0001, P0002, ...).
func BuildCatalog(rng *rand.Rand, perSubcategory int) ([]*models.Product, error) {
	if perSubcategory <= 0 {
		return nil, fmt.Errorf("generator: products per subcategory must be positive, got %d", perSubcategory)
	}

	catalog := make([]*models.Product, 0, len(Subcategories)*perSubcategory)
	id := 1

	for _, subcategory := range Subcategories {
		for i := 0; i < perSubcategory; i++ {
			brand := Brands[rng.Intn(len(Brands))]
			suffix := modelSuffixes[rng.Intn(len(modelSuffixes))]
			basePrice := utils.Round2(utils.FloatRange(rng, basePriceMin, basePriceMax))

			catalog = append(catalog, &models.Product{
				ID:               fmt.Sprintf("P%04d", id),
				Name:             fmt.Sprintf("%s %s %s", brand, capitalize(subcategory), suffix),
				Subcategory:      subcategory,
				Brand:            brand,
				BasePrice:        basePrice,
				CostPrice:        utils.Round2(basePrice * costRatio),
				PopularityFactor: utils.IntRange(rng, 1, 10),
				SeasonalFactor:   1.2,
				StockLevel:       utils.IntRange(rng, 15, 80),
			})
			id++
		}
	}

	return catalog, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
