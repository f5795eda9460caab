package planner

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"voyage/internal/models/response_models"
)

func TestExtractInterests(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "vocabulary in order", input: "History and FOOD please", want: []string{"food", "history"}},
		{name: "capped at four", input: "culture food nature adventure beach art", want: []string{"culture", "food", "nature", "adventure"}},
		{name: "hiking heuristic", input: "I love hiking and mountains", want: []string{"adventure", "nature"}},
		{name: "temple heuristic", input: "old temples", want: []string{"history", "culture"}},
		{name: "default", input: "surprise me", want: []string{"culture", "food", "nature"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractInterests(tt.input))
		})
	}
}

func TestExtractInterestsDeterministic(t *testing.T) {
	input := "street food, photography and a bit of shopping"
	first := ExtractInterests(input)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ExtractInterests(input))
	}
}

func TestExtractInterestsDefaultIsCopy(t *testing.T) {
	got := ExtractInterests("nothing known")
	got[0] = "mutated"
	assert.Equal(t, "culture", ExtractInterests("nothing known")[0])
}

// distinctDays sums Days once per destination run.
func distinctDays(entries []response_models.ItineraryEntry) int {
	total := 0
	for i, e := range entries {
		if i == 0 || !e.SameDestination(entries[i-1]) {
			total += e.Days
		}
	}
	return total
}

func TestGenerateItineraryBounds(t *testing.T) {
	inputs := []string{"I love hiking and mountains", "temples in japan", "anything", "beach", "wine and food"}
	for days := 1; days <= 30; days++ {
		for seed := uint64(0); seed < 5; seed++ {
			for _, input := range inputs {
				entries := GenerateItinerary(input, days, seed)
				require.NotEmpty(t, entries, "days=%d input=%q", days, input)
				assert.LessOrEqual(t, distinctDays(entries), days, "days=%d input=%q", days, input)
				assert.LessOrEqual(t, len(entries), days)

				for _, e := range entries {
					assert.GreaterOrEqual(t, e.Score, 70)
					assert.LessOrEqual(t, e.Score, 100)
					if e.Days == 1 {
						assert.Empty(t, e.ItinerarySuggestion)
					} else {
						assert.NotEmpty(t, e.ItinerarySuggestion)
					}
				}
			}
		}
	}
}

func TestGenerateItinerarySeeded(t *testing.T) {
	a := GenerateItinerary("food and art", 9, 42)
	b := GenerateItinerary("food and art", 9, 42)
	assert.Equal(t, a, b)
}

func TestGenerateItineraryRejectsNonPositiveDays(t *testing.T) {
	assert.Nil(t, GenerateItinerary("beach", 0, 1))
}

func TestGenerateItineraryFallbackCatalog(t *testing.T) {
	entries := GenerateItinerary("surprise me", 2, 7)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "Paris", e.Destination)
		assert.Equal(t, 2, e.Days)
	}
}

func TestGenerateItineraryTruncatesDayBudget(t *testing.T) {
	// three food destinations over five days: 2 + 2 + 1
	entries := GenerateItinerary("food", 5, 3)
	assert.Equal(t, 5, distinctDays(entries))

	// one japan day: two candidates trimmed to ceil(1/2) = 1
	entries = GenerateItinerary("kyoto", 1, 3)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Days)
}

// stopRegions collapses per-day entries into the region of each stop.
func stopRegions(entries []response_models.ItineraryEntry) []string {
	var regions []string
	for i, e := range entries {
		if i == 0 || !e.SameDestination(entries[i-1]) {
			regions = append(regions, e.Region)
		}
	}
	return regions
}

func TestGenerateItineraryKeepsRegionsTogether(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		regions := stopRegions(GenerateItinerary("museum trip", 9, seed))
		require.Len(t, regions, 3, "seed %d", seed)

		seen := map[string]bool{}
		for i, r := range regions {
			if i > 0 && r == regions[i-1] {
				continue
			}
			assert.False(t, seen[r], "seed %d: region %s split in %v", seed, r, regions)
			seen[r] = true
		}
	}
}

func TestOrderByRegion(t *testing.T) {
	names := func(ds []Destination) []string {
		var out []string
		for _, d := range ds {
			out = append(out, d.Name)
		}
		return out
	}
	stops := destinationsNamed([]string{"Rome", "Kyoto", "Paris", "Bali", "Barcelona"})

	// Rome, a nearby Western Europe stop, its neighbour in region, then
	// the earliest unrelated stop and its nearby region
	assert.Equal(t, []string{"Rome", "Paris", "Barcelona", "Kyoto", "Bali"}, names(orderByRegion(stops)))
	assert.Equal(t, []string{"Rome", "Kyoto", "Paris", "Bali", "Barcelona"}, names(stops), "input is left untouched")
}

func TestGenerateItineraryActivityNotes(t *testing.T) {
	entries := GenerateItinerary("beach", 4, 11)
	require.Len(t, entries, 4)

	for i, e := range entries {
		first := i == 0 || !e.SameDestination(entries[i-1])
		last := i == len(entries)-1 || !e.SameDestination(entries[i+1])
		assert.Equal(t, first, strings.HasPrefix(e.Activities[0], arrivalPrefix), "entry %d", i)
		assert.Equal(t, last, strings.HasPrefix(e.Activities[len(e.Activities)-1], departurePrefix), "entry %d", i)
	}
}

func TestAnnotate(t *testing.T) {
	itinerary := []response_models.ItineraryEntry{
		{Destination: "Kyoto", Country: "Japan", Activities: []string{"Arrive in Kyoto now", "a", "b", "c"}},
		{Destination: "Kyoto", Country: "Japan", Activities: []string{"d"}},
		{Destination: "Tokyo", Country: "Japan", Activities: []string{"e", "f"}},
	}
	interests := []string{"culture", "food"}

	matched, activityMap := Annotate(itinerary, interests)

	assert.Equal(t, [][]string{{"culture", "food"}, {"culture", "food"}, {"food", "culture"}}, matched)
	assert.NotContains(t, activityMap.For(0), "Arrive in Kyoto now")
	assert.Equal(t, []string{"food"}, activityMap.For(0)["a"])
	assert.Equal(t, []string{"culture", "food"}, activityMap.For(0)["b"])
	assert.Equal(t, []string{"culture", "food"}, activityMap.For(1)["d"])
	assert.Equal(t, []string{"food", "culture"}, activityMap.For(2)["e"])
	assert.Equal(t, []string{"culture"}, activityMap.For(2)["f"])
}

func TestAnnotateSingleInterestDedupes(t *testing.T) {
	itinerary := []response_models.ItineraryEntry{{Destination: "Bali", Country: "Indonesia", Activities: []string{"swim"}}}
	matched, activityMap := Annotate(itinerary, []string{"beach"})
	assert.Equal(t, [][]string{{"beach"}}, matched)
	assert.Equal(t, []string{"beach"}, activityMap.For(0)["swim"])
}

func TestAnnotateWithoutInterests(t *testing.T) {
	itinerary := []response_models.ItineraryEntry{{Destination: "Rome", Country: "Italy", Activities: []string{"walk"}}}
	matched, activityMap := Annotate(itinerary, nil)
	assert.Equal(t, [][]string{{"culture", "sightseeing"}}, matched)
	assert.Nil(t, activityMap.For(0))
}

func TestPlanHikingScenario(t *testing.T) {
	input := "I love hiking and mountains"
	require.Equal(t, []string{"adventure", "nature"}, ExtractInterests(input))

	for seed := uint64(0); seed < 25; seed++ {
		plan := Plan(input, 6, seed)
		require.NotEmpty(t, plan.Itinerary)
		assert.Len(t, plan.MatchedInterests, len(plan.Itinerary))
		assert.LessOrEqual(t, distinctDays(plan.Itinerary), 6)

		stops := map[string]bool{}
		for _, e := range plan.Itinerary {
			stops[e.Destination] = true
			assert.Contains(t, []string{"Interlaken", "Queenstown"}, e.Destination)
			assert.GreaterOrEqual(t, len(e.Activities), 3)
			assert.LessOrEqual(t, len(e.Activities), 5)
		}
		assert.LessOrEqual(t, len(stops), 2)
	}
}
