package simulator

import (
	"retail-datagen/models"
	"retail-datagen/utils"
)

// quantityChoices is the per-subcategory discrete distribution: repeated
// values raise their probability. Laptops and cameras are almost always
// single-unit purchases; accessories skew toward multi-packs.
var quantityChoices = map[string][]int{
	"smartphones":  {1, 1, 1, 2},
	"laptops":      {1, 1, 1, 1},
	"tablets":      {1, 1, 2},
	"accessories":  {1, 2, 3, 4, 5},
	"smartwatches": {1, 1, 2},
	"cameras":      {1, 1, 1, 1},
}

var defaultQuantityChoices = []int{1, 1, 2}

// quantity determines units sold for one transaction. Premium customers
// have a 30% chance of an extra-unit bump.
func (e *Engine) quantity(p *models.Product, c *models.Customer) int {
	choices, ok := quantityChoices[p.Subcategory]
	if !ok {
		choices = defaultQuantityChoices
	}
	qty := choices[e.rng.Intn(len(choices))]

	if c.Segment == models.SegmentPremium && e.rng.Float64() < 0.3 {
		if e.policy.QuantityBurst {
			qty += int(utils.FloatRange(e.rng, 1, 3))
		} else {
			qty++
		}
	}

	if qty < 1 {
		qty = 1
	}
	return qty
}
