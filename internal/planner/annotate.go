package planner

import (
	"slices"
	"voyage/internal/models/response_models"
)

const maxMatchedInterests = 3

var fallbackMatches = []string{"culture", "sightseeing"}

// Annotate derives, per itinerary entry, the interests that explain the
// destination and the tags of each of its activities. Consecutive entries
// of one destination share a destination ordinal, which offsets the
// rotation through the interest list.
func Annotate(itinerary []response_models.ItineraryEntry, interests []string) ([][]string, response_models.ActivityInterestMap) {
	matched := make([][]string, len(itinerary))
	activityMap := make(response_models.ActivityInterestMap, len(itinerary))
	n := len(interests)

	ordinal := -1
	for i, entry := range itinerary {
		if i == 0 || !entry.SameDestination(itinerary[i-1]) {
			ordinal++
		}

		if n == 0 {
			matched[i] = slices.Clone(fallbackMatches)
			continue
		}

		tags := make([]string, 0, min(maxMatchedInterests, n))
		for k := 0; k < min(maxMatchedInterests, n); k++ {
			tags = append(tags, interests[(ordinal+k)%n])
		}
		matched[i] = dedupe(tags)

		activities := make(map[string][]string)
		for a, activity := range entry.Activities {
			if isLogisticsNote(activity) {
				continue
			}
			activityTags := []string{interests[(a+ordinal)%n]}
			if a%2 == 0 {
				activityTags = append(activityTags, interests[(a+ordinal+1)%n])
			}
			activities[activity] = dedupe(activityTags)
		}
		if len(activities) > 0 {
			activityMap[i] = activities
		}
	}

	return matched, activityMap
}

func dedupe(tags []string) []string {
	out := tags[:0]
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// Plan runs the offline pipeline: interests, itinerary, annotations.
func Plan(input string, days int, seed uint64) *response_models.PlanResponse {
	interests := ExtractInterests(input)
	itinerary := GenerateItinerary(input, days, seed)
	matched, activityMap := Annotate(itinerary, interests)

	return &response_models.PlanResponse{
		Itinerary:           itinerary,
		MatchedInterests:    matched,
		ActivityInterestMap: activityMap,
	}
}
