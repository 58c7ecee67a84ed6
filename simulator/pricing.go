package simulator

import (
	"retail-datagen/models"
	"retail-datagen/utils"
)

// unitPrice applies the discount stack to a product's base price:
// month-conditioned seasonal discount, segment discount, optional
// stock-level adjustment, then ±5% daily noise, rounded to cents.
func (e *Engine) unitPrice(p *models.Product, c *models.Customer, day *models.DateInfo) float64 {
	price := p.BasePrice

	switch {
	case day.Month == 11 && day.Day >= 21 && day.Day <= 26:
		price *= 0.7 // Black Friday window
	case day.Month == 12 && day.Day >= 21 && day.Day <= 30:
		price *= 0.8 // Christmas window
	case day.Month == 11 || day.Month == 12:
		price *= 0.9
	case day.Month >= 6 && day.Month <= 8:
		price *= 0.95 // summer sales
	}

	switch c.Segment {
	case models.SegmentPremium:
		price *= 0.98
	case models.SegmentBudget:
		price *= 0.92
	}

	if e.policy.StockPricing {
		if p.StockLevel < 50 {
			price *= 1.1
		} else if p.StockLevel > 70 {
			price *= 0.95
		}
	}

	price *= utils.FloatRange(e.rng, 0.95, 1.05)
	return utils.Round2(price)
}
