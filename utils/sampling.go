package utils

import "math/rand"

// WeightedIndex draws an index from a categorical distribution by cumulative
// inversion: each candidate i is picked with probability weights[i]/sum.
// Weights must be non-negative; if they sum to zero the draw is uniform.
// The caller owns the rand source, so seeded runs stay reproducible.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	target := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		if target < cum {
			return i
		}
	}
	// Floating-point slack on the last accumulation step.
	return len(weights) - 1
}

// IntRange returns a uniform random integer in [min, max] inclusive.
func IntRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// FloatRange returns a uniform random float in [min, max).
func FloatRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
