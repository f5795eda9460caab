package planner

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"voyage/internal/models/response_models"
)

const (
	maxDestinations       = 3
	minDaysPerDestination = 2
	minScore              = 70
	maxScore              = 100
	minDailyActivities    = 3
	maxDailyActivities    = 4

	arrivalPrefix   = "Arrive in "
	departurePrefix = "Depart from "

	// second PCG word, keeps streams for nearby seeds apart
	pcgStream = 0x9e3779b97f4a7c15
)

type activityTemplate struct {
	text     string
	keywords []string
}

var activityTemplates = []activityTemplate{
	{text: "Guided walking tour through the historic heart of %s", keywords: []string{"history", "culture", "walk"}},
	{text: "Tasting menu of local specialties at a family-run spot in %s", keywords: []string{"food", "cuisine", "eat"}},
	{text: "Sunrise hike to a panoramic viewpoint above %s", keywords: []string{"hiking", "nature", "mountain", "adventure"}},
	{text: "Afternoon at the best-known museum in %s", keywords: []string{"art", "museum", "history"}},
	{text: "Browse the central market and artisan shops of %s", keywords: []string{"shopping", "market"}},
	{text: "Golden-hour photo walk around %s", keywords: []string{"photography", "camera", "sunset"}},
	{text: "Slow afternoon at a spa or garden in %s", keywords: []string{"relaxation", "spa", "calm"}},
	{text: "Day on the water near %s: beach, boat or swim", keywords: []string{"beach", "ocean", "swim", "island"}},
	{text: "Climbing, rafting or biking in the hills outside %s", keywords: []string{"adventure", "climb", "bike", "raft"}},
	{text: "Evening food crawl through the night markets of %s", keywords: []string{"food", "nightlife", "market"}},
}

var suggestionPool = []string{
	"Start with the headline sights of %[1]s, then spend the remaining %[2]d days on your interests.",
	"Split your %[2]d days in %[1]s between a famous landmark each morning and a neighborhood each afternoon.",
	"Give %[1]s one day of major attractions, one of local food, and the rest to hidden gems.",
	"Keep the first day in %[1]s easy, plan a day trip midway and leave the last of your %[2]d days for shopping.",
}

// GenerateItinerary fabricates one entry per day at each chosen destination.
// The same seed yields the same itinerary. Days beyond the point where the
// day budget runs out are dropped, so fewer than days may be covered.
func GenerateItinerary(input string, days int, seed uint64) []response_models.ItineraryEntry {
	if days < 1 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed^pcgStream))
	lower := strings.ToLower(input)
	half := (days + 1) / 2

	candidates := candidateDestinations(lower, half)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	candidates = candidates[:min(len(candidates), maxDestinations, half)]
	if len(candidates) == 0 {
		return nil
	}
	candidates = orderByRegion(candidates)

	templates := matchingTemplates(lower, ExtractInterests(input))
	perDestination := days / len(candidates)
	remaining := days
	tripDay := 0

	var entries []response_models.ItineraryEntry
	for _, dest := range candidates {
		if remaining == 0 {
			break
		}
		span := min(max(perDestination, minDaysPerDestination), remaining)
		remaining -= span

		var suggestion string
		if span > 1 {
			suggestion = fmt.Sprintf(suggestionPool[rng.IntN(len(suggestionPool))], dest.Name, span)
		}

		for day := 1; day <= span; day++ {
			tripDay++
			entries = append(entries, response_models.ItineraryEntry{
				Destination:         dest.Name,
				Country:             dest.Country,
				Region:              dest.Region,
				Description:         dest.Description,
				Days:                span,
				Score:               minScore + rng.IntN(maxScore-minScore+1),
				Activities:          dailyActivities(dest.Name, templates, tripDay, day == 1, day == span, rng),
				ItinerarySuggestion: suggestion,
			})
		}
	}

	return entries
}

// matchingTemplates keeps templates whose keywords appear in the text or in
// the extracted interests, topped up in catalog order so a day can always
// draw distinct activities.
func matchingTemplates(lower string, interests []string) []activityTemplate {
	wanted := make(map[string]bool, len(interests))
	for _, i := range interests {
		wanted[i] = true
	}

	var matched []activityTemplate
	used := make([]bool, len(activityTemplates))
	for i, t := range activityTemplates {
		for _, k := range t.keywords {
			if wanted[k] || strings.Contains(lower, k) {
				matched = append(matched, t)
				used[i] = true
				break
			}
		}
	}

	for i, t := range activityTemplates {
		if len(matched) >= maxDailyActivities {
			break
		}
		if !used[i] {
			matched = append(matched, t)
		}
	}
	return matched
}

func dailyActivities(city string, templates []activityTemplate, tripDay int, first, last bool, rng *rand.Rand) []string {
	count := minDailyActivities + rng.IntN(maxDailyActivities-minDailyActivities+1)
	start := (tripDay*3 + rng.IntN(len(templates))) % len(templates)

	activities := make([]string, 0, count+2)
	if first {
		activities = append(activities, arrivalPrefix+city+" and settle into your accommodation")
	}
	for i := 0; i < count; i++ {
		activities = append(activities, fmt.Sprintf(templates[(start+i)%len(templates)].text, city))
	}
	if last {
		activities = append(activities, departurePrefix+city+" after a final stroll")
	}
	return activities
}

// isLogisticsNote reports arrival and departure notes, which carry no
// interest badges.
func isLogisticsNote(activity string) bool {
	return strings.HasPrefix(activity, arrivalPrefix) || strings.HasPrefix(activity, departurePrefix)
}
