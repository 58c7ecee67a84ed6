package simulator

import (
	"sort"

	"retail-datagen/models"
	"retail-datagen/utils"
)

// segmentBaseWeight is the per-segment base weight for customer selection.
var segmentBaseWeight = map[models.Segment]float64{
	models.SegmentPremium: 3.0,
	models.SegmentRegular: 2.0,
	models.SegmentBudget:  1.0,
}

type categoryPreference struct {
	categories []string
	weights    []float64
}

// segmentPreferences maps each segment to its preferred subcategories.
var segmentPreferences = map[models.Segment]categoryPreference{
	models.SegmentPremium: {
		categories: []string{"smartphones", "laptops", "cameras"},
		weights:    []float64{0.4, 0.35, 0.25},
	},
	models.SegmentRegular: {
		categories: []string{"tablets", "accessories", "smartwatches"},
		weights:    []float64{0.4, 0.35, 0.25},
	},
	models.SegmentBudget: {
		categories: []string{"accessories", "smartwatches"},
		weights:    []float64{0.6, 0.4},
	},
}

// selectCustomer draws one customer, weighted by segment, accumulated order
// history and season. Weights are recomputed from the live ledger on every
// draw: repeat buyers become increasingly likely as the run progresses.
func (e *Engine) selectCustomer(day *models.DateInfo) *models.Customer {
	for i, c := range e.roster {
		w := segmentBaseWeight[c.Segment]

		if h := e.ledger.entries[c.ID]; h.OrderCount > 0 {
			m := float64(h.OrderCount)*0.5 + 1
			if m > 5.0 {
				m = 5.0
			}
			w *= m
		}

		if day.Month == 11 || day.Month == 12 {
			w *= 1.5
		} else if day.Month >= 6 && day.Month <= 8 {
			w *= 1.2
		}
		e.weights[i] = w
	}
	return e.roster[utils.WeightedIndex(e.rng, e.weights)]
}

// selectProduct picks a subcategory from the customer's segment preference
// list, then a product within it. An empty subcategory falls back to the
// whole catalog.
func (e *Engine) selectProduct(c *models.Customer, day *models.DateInfo) *models.Product {
	prefs := segmentPreferences[c.Segment]

	var category string
	if e.policy.WeightedCategories {
		category = prefs.categories[utils.WeightedIndex(e.rng, e.seasonalCategoryWeights(prefs, day))]
	} else {
		category = prefs.categories[e.rng.Intn(len(prefs.categories))]
	}

	pool := e.byCategory[category]
	if len(pool) == 0 {
		pool = e.catalog
	}

	if !e.policy.PriceRankWeighting || c.Segment == models.SegmentRegular {
		return pool[e.rng.Intn(len(pool))]
	}
	return e.priceRankedPick(pool, c.Segment)
}

// seasonalCategoryWeights applies the summer camera and holiday smartphone
// boosts on top of the declared preference weights.
func (e *Engine) seasonalCategoryWeights(prefs categoryPreference, day *models.DateInfo) []float64 {
	weights := append([]float64(nil), prefs.weights...)
	for i, cat := range prefs.categories {
		if cat == "cameras" && day.Month >= 6 && day.Month <= 8 {
			weights[i] *= 1.5
		}
		if cat == "smartphones" && (day.Month == 11 || day.Month == 12) {
			weights[i] *= 1.3
		}
	}
	return weights
}

// priceRankedPick weights the half of the pool the segment favours at 1.5×:
// the pricier half for Premium, the cheaper half for Budget.
func (e *Engine) priceRankedPick(pool []*models.Product, segment models.Segment) *models.Product {
	sorted := append([]*models.Product(nil), pool...)
	if segment == models.SegmentPremium {
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].BasePrice > sorted[j].BasePrice })
	} else {
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].BasePrice < sorted[j].BasePrice })
	}

	weights := make([]float64, len(sorted))
	half := len(sorted) / 2
	for i := range weights {
		if i < half {
			weights[i] = 1.5
		} else {
			weights[i] = 1.0
		}
	}
	return sorted[utils.WeightedIndex(e.rng, weights)]
}
