package simulator

import "fmt"

// Policy selects between the two behaviour variants of the generator. The
// classic policy is the simpler formula set; the extended policy layers on
// midweek volume boosts, extra volume noise, stock-driven pricing and
// richer product-preference weighting.
type Policy struct {
	Name string

	// Volume
	MidweekBoost bool // ×1.4 Nov/Dec, ×1.3 Jun–Aug on Tue–Fri
	VolumeNoise  bool // final ×uniform(0.7, 1.5)

	// Product selection
	WeightedCategories bool // declared preference weights + seasonal boosts
	PriceRankWeighting bool // Premium favours pricier half, Budget cheaper half

	// Quantity and pricing
	QuantityBurst bool // Premium bump is +uniform-int(1,3) instead of +1
	StockPricing  bool // low-stock markup / high-stock markdown
}

// ClassicPolicy is the default behaviour set.
func ClassicPolicy() Policy {
	return Policy{Name: "classic"}
}

// ExtendedPolicy enables every optional behaviour layer.
func ExtendedPolicy() Policy {
	return Policy{
		Name:               "extended",
		MidweekBoost:       true,
		VolumeNoise:        true,
		WeightedCategories: true,
		PriceRankWeighting: true,
		QuantityBurst:      true,
		StockPricing:       true,
	}
}

// PolicyByName resolves a configured policy name.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "classic", "":
		return ClassicPolicy(), nil
	case "extended":
		return ExtendedPolicy(), nil
	default:
		return Policy{}, fmt.Errorf("simulator: unknown policy %q (want classic or extended)", name)
	}
}
