package render

import (
	"fmt"
	"html/template"
	"strings"
	"voyage/internal/models/response_models"
)

type Stats struct {
	Cities        int
	Activities    int
	RegionChanges int
}

// ComputeStats counts destinations (runs of consecutive entries at one
// stop), activities across all entries and region changes.
func ComputeStats(itinerary []response_models.ItineraryEntry) Stats {
	stats := Stats{
		Cities:        len(groupStops(itinerary)),
		RegionChanges: RegionChanges(itinerary),
	}
	for _, e := range itinerary {
		stats.Activities += len(e.Activities)
	}
	return stats
}

// RegionChanges counts adjacent pairs whose regions differ. Pairs where
// either side has no region or the "Other" fallback are not counted.
func RegionChanges(itinerary []response_models.ItineraryEntry) int {
	changes := 0
	for i := 1; i < len(itinerary); i++ {
		prev, cur := itinerary[i-1].Region, itinerary[i].Region
		if !knownRegion(prev) || !knownRegion(cur) {
			continue
		}
		if prev != cur {
			changes++
		}
	}
	return changes
}

func knownRegion(region string) bool {
	return region != "" && region != otherRegion
}

// MatchTier is the badge color band of a match score.
type MatchTier struct {
	Name  string
	Color template.CSS
}

var (
	TierExcellent = MatchTier{Name: "excellent", Color: "#4CAF50"}
	TierGood      = MatchTier{Name: "good", Color: "#8BC34A"}
	TierModerate  = MatchTier{Name: "moderate", Color: "#FFC107"}
	TierFair      = MatchTier{Name: "fair", Color: "#FF9800"}
	TierLow       = MatchTier{Name: "low", Color: "#FF5722"}
)

// TierFor partitions scores; each lower bound is inclusive.
func TierFor(score int) MatchTier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierModerate
	case score >= 20:
		return TierFair
	default:
		return TierLow
	}
}

// Explain says in one sentence why a destination was picked.
func Explain(destination, country string, interests []string, score int) string {
	place := destination + ", " + country
	if len(interests) == 0 {
		return place + " is a highly-rated destination that offers diverse experiences for travelers."
	}

	listed := strings.Join(interests[:min(3, len(interests))], ", ")
	switch {
	case score >= 80:
		return fmt.Sprintf("%s is an excellent match (%d%% confidence) for your interests in %s.", place, score, listed)
	case score >= 60:
		return fmt.Sprintf("%s is a great match (%d%% confidence) based on your interests in %s.", place, score, listed)
	case score >= 40:
		return fmt.Sprintf("%s is a good match (%d%% confidence) for %s.", place, score, listed)
	default:
		return fmt.Sprintf("%s was selected as a popular destination (%d%% confidence).", place, score)
	}
}

// DayDistributionTip picks the pacing advice for a trip length.
func DayDistributionTip(days int) string {
	switch {
	case days <= 3:
		return "Short trips focus on one destination per day for deeper exploration"
	case days <= 7:
		return "We recommend 2-3 days per city to really experience each destination"
	case days <= 14:
		return "Spending 3-4 days per city gives you time to explore like a local"
	default:
		return "Longer stays (4-5 days) let you discover hidden gems and enjoy a relaxed pace"
	}
}
