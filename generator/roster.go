package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"retail-datagen/models"
	"retail-datagen/utils"
)

// segmentProfile bounds the demographic attributes sampled for one segment.
type segmentProfile struct {
	weight    float64
	ageMin    int
	ageMax    int
	incomeMin int
	incomeMax int
	ordersMin int
	ordersMax int
}

var segmentOrder = []models.Segment{
	models.SegmentPremium, models.SegmentRegular, models.SegmentBudget,
}

var segmentProfiles = map[models.Segment]segmentProfile{
	models.SegmentPremium: {weight: 0.15, ageMin: 30, ageMax: 55, incomeMin: 80000, incomeMax: 150000, ordersMin: 10, ordersMax: 50},
	models.SegmentRegular: {weight: 0.60, ageMin: 25, ageMax: 45, incomeMin: 40000, incomeMax: 80000, ordersMin: 5, ordersMax: 30},
	models.SegmentBudget:  {weight: 0.25, ageMin: 18, ageMax: 35, incomeMin: 20000, incomeMax: 40000, ordersMin: 1, ordersMax: 10},
}

type cityWeight struct {
	name   string
	weight float64
}

// cityDistribution approximates the retailer's geographic footprint.
var cityDistribution = []cityWeight{
	{"New York", 20},
	{"Los Angeles", 15},
	{"Chicago", 12},
	{"Houston", 10},
	{"Phoenix", 8},
	{"Philadelphia", 7},
	{"San Antonio", 6},
	{"San Diego", 5},
	{"Dallas", 5},
	{"Other", 12},
}

var freeEmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
}

// BuildRoster generates count customers with segment-conditioned attributes.
// Names come from the faker; all numeric draws come from rng so a fixed
// seed reproduces the roster exactly.
func BuildRoster(rng *rand.Rand, faker *gofakeit.Faker, count int) ([]*models.Customer, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generator: customer count must be positive, got %d", count)
	}

	segmentWeights := make([]float64, len(segmentOrder))
	for i, s := range segmentOrder {
		segmentWeights[i] = segmentProfiles[s].weight
	}
	cityWeights := make([]float64, len(cityDistribution))
	for i, c := range cityDistribution {
		cityWeights[i] = c.weight
	}

	roster := make([]*models.Customer, 0, count)
	for id := 1; id <= count; id++ {
		segment := segmentOrder[utils.WeightedIndex(rng, segmentWeights)]
		profile := segmentProfiles[segment]

		first := faker.FirstName()
		last := faker.LastName()
		domain := freeEmailDomains[rng.Intn(len(freeEmailDomains))]

		roster = append(roster, &models.Customer{
			ID:          fmt.Sprintf("C%04d", id),
			FirstName:   first,
			LastName:    last,
			Email:       fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), domain),
			Segment:     segment,
			Age:         utils.IntRange(rng, profile.ageMin, profile.ageMax),
			Income:      utils.IntRange(rng, profile.incomeMin, profile.incomeMax),
			TotalOrders: utils.IntRange(rng, profile.ordersMin, profile.ordersMax),
			City:        cityDistribution[utils.WeightedIndex(rng, cityWeights)].name,
		})
	}

	return roster, nil
}
