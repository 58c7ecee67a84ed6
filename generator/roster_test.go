package generator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"retail-datagen/models"
)

func buildTestRoster(t *testing.T, seed int64, count int) []*models.Customer {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	faker := gofakeit.New(seed)
	roster, err := BuildRoster(rng, faker, count)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}
	return roster
}

func TestBuildRosterSize(t *testing.T) {
	roster := buildTestRoster(t, 42, 200)
	if len(roster) != 200 {
		t.Errorf("roster size: got %d, want 200", len(roster))
	}
}

func TestBuildRosterSegmentRanges(t *testing.T) {
	roster := buildTestRoster(t, 42, 500)

	for _, c := range roster {
		profile, ok := segmentProfiles[c.Segment]
		if !ok {
			t.Fatalf("%s: unknown segment %q", c.ID, c.Segment)
		}
		if c.Age < profile.ageMin || c.Age > profile.ageMax {
			t.Errorf("%s (%s): age %d outside [%d, %d]", c.ID, c.Segment, c.Age, profile.ageMin, profile.ageMax)
		}
		if c.Income < profile.incomeMin || c.Income > profile.incomeMax {
			t.Errorf("%s (%s): income %d outside range", c.ID, c.Segment, c.Income)
		}
		if c.TotalOrders < profile.ordersMin || c.TotalOrders > profile.ordersMax {
			t.Errorf("%s (%s): total orders %d outside range", c.ID, c.Segment, c.TotalOrders)
		}
	}
}

func TestBuildRosterEmailShape(t *testing.T) {
	roster := buildTestRoster(t, 42, 50)

	for _, c := range roster {
		want := strings.ToLower(c.FirstName) + "." + strings.ToLower(c.LastName) + "@"
		if !strings.HasPrefix(c.Email, want) {
			t.Errorf("%s: email %q does not start with %q", c.ID, c.Email, want)
		}
	}
}

func TestBuildRosterSegmentMix(t *testing.T) {
	roster := buildTestRoster(t, 42, 2000)

	counts := make(map[models.Segment]int)
	for _, c := range roster {
		counts[c.Segment]++
	}

	// Regular customers are drawn at 60%; with 2000 draws the share should
	// be nowhere near the other segments.
	if counts[models.SegmentRegular] <= counts[models.SegmentPremium] ||
		counts[models.SegmentRegular] <= counts[models.SegmentBudget] {
		t.Errorf("segment mix looks wrong: %v", counts)
	}
}

func TestBuildRosterDeterministic(t *testing.T) {
	a := buildTestRoster(t, 7, 100)
	b := buildTestRoster(t, 7, 100)

	for i := range a {
		if *a[i] != *b[i] {
			t.Fatalf("roster diverged at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestBuildRosterRejectsNonPositiveCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := BuildRoster(rng, gofakeit.New(1), 0); err == nil {
		t.Error("expected error for zero customer count")
	}
}
