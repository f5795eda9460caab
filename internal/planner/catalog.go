package planner

import "slices"

// Destination is a canned catalog stop used by the mock generator.
type Destination struct {
	Name        string
	Country     string
	Region      string
	Description string
}

var catalog = []Destination{
	{Name: "Paris", Country: "France", Region: "Western Europe",
		Description: "Boulevards, world-class museums and cafe terraces along the Seine."},
	{Name: "Rome", Country: "Italy", Region: "Southern Europe",
		Description: "Ancient ruins, baroque piazzas and trattorias on every corner."},
	{Name: "Kyoto", Country: "Japan", Region: "East Asia",
		Description: "Wooden temples, moss gardens and the lantern-lit lanes of Gion."},
	{Name: "Barcelona", Country: "Spain", Region: "Western Europe",
		Description: "Gaudi architecture, tapas bars and a city beach within walking distance."},
	{Name: "Tokyo", Country: "Japan", Region: "East Asia",
		Description: "Neon districts, quiet shrines and some of the best food on the planet."},
	{Name: "Bali", Country: "Indonesia", Region: "Southeast Asia",
		Description: "Rice terraces, surf breaks and slow afternoons by the ocean."},
	{Name: "Interlaken", Country: "Switzerland", Region: "Central Europe",
		Description: "Alpine base camp between two lakes with trails in every direction."},
	{Name: "Queenstown", Country: "New Zealand", Region: "Oceania",
		Description: "Lakeside adventure capital ringed by the Remarkables."},
	{Name: "Cusco", Country: "Peru", Region: "South America",
		Description: "Inca stonework, Andean markets and the gateway to Machu Picchu."},
	{Name: "Cape Town", Country: "South Africa", Region: "Africa South",
		Description: "Table Mountain above, two oceans below and wine country next door."},
}

type keywordGroup struct {
	keywords     []string
	destinations []string
}

// Ordered; the first group with a keyword present in the text wins.
var keywordGroups = []keywordGroup{
	{keywords: []string{"japan", "kyoto", "tokyo", "asia", "temple", "sushi"}, destinations: []string{"Kyoto", "Tokyo"}},
	{keywords: []string{"hiking", "mountain", "trek", "alps", "ski"}, destinations: []string{"Interlaken", "Queenstown"}},
	{keywords: []string{"beach", "island", "surf", "tropical", "ocean"}, destinations: []string{"Bali", "Cape Town"}},
	{keywords: []string{"food", "cuisine", "pasta", "wine"}, destinations: []string{"Rome", "Paris", "Barcelona"}},
	{keywords: []string{"museum", "history", "europe", "art"}, destinations: []string{"Paris", "Rome", "Barcelona"}},
	{keywords: []string{"adventure", "ruins", "andes", "inca"}, destinations: []string{"Cusco", "Queenstown"}},
	{keywords: []string{"safari", "wildlife", "africa"}, destinations: []string{"Cape Town"}},
}

// candidateDestinations returns a fresh slice the caller may reorder.
func candidateDestinations(lower string, fallbackCount int) []Destination {
	for _, group := range keywordGroups {
		if containsAny(lower, group.keywords) {
			return destinationsNamed(group.destinations)
		}
	}
	n := min(fallbackCount, len(catalog))
	out := make([]Destination, n)
	copy(out, catalog[:n])
	return out
}

func destinationsNamed(names []string) []Destination {
	out := make([]Destination, 0, len(names))
	for _, name := range names {
		for _, d := range catalog {
			if d.Name == name {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// nearbyRegions lists the regions one short hop away from each region.
var nearbyRegions = map[string][]string{
	"Southeast Asia":  {"East Asia", "South Asia", "Oceania"},
	"East Asia":       {"Southeast Asia", "South Asia"},
	"South Asia":      {"Southeast Asia", "Middle East"},
	"Oceania":         {"Southeast Asia"},
	"Middle East":     {"South Asia", "Africa North", "Eastern Europe"},
	"Africa North":    {"Middle East", "Africa West", "Africa East", "Africa South"},
	"Africa West":     {"Africa North", "Africa East", "Africa South"},
	"Africa East":     {"Africa North", "Africa West", "Africa South", "Middle East"},
	"Africa South":    {"Africa North", "Africa West", "Africa East"},
	"Western Europe":  {"Central Europe", "Southern Europe", "Northern Europe"},
	"Central Europe":  {"Western Europe", "Southern Europe", "Eastern Europe", "Northern Europe"},
	"Southern Europe": {"Western Europe", "Central Europe", "Eastern Europe", "Middle East"},
	"Northern Europe": {"Western Europe", "Central Europe", "Eastern Europe"},
	"Eastern Europe":  {"Central Europe", "Southern Europe", "Northern Europe", "Middle East"},
	"North America":   {"Central America", "Caribbean"},
	"Central America": {"North America", "South America", "Caribbean"},
	"Caribbean":       {"North America", "Central America", "South America"},
	"South America":   {"Central America", "Caribbean"},
}

func isNearby(from, to string) bool {
	return slices.Contains(nearbyRegions[from], to)
}

// orderByRegion keeps the first stop and then walks greedily: the next
// stop is the earliest remaining one in the same region, else in a nearby
// region, else the earliest remaining. Stops of one region end up adjacent.
func orderByRegion(stops []Destination) []Destination {
	if len(stops) <= 1 {
		return stops
	}
	remaining := slices.Clone(stops)
	ordered := make([]Destination, 0, len(stops))
	ordered = append(ordered, remaining[0])
	remaining = remaining[1:]

	for len(remaining) > 0 {
		current := ordered[len(ordered)-1].Region
		next := slices.IndexFunc(remaining, func(d Destination) bool { return d.Region == current })
		if next < 0 {
			next = slices.IndexFunc(remaining, func(d Destination) bool { return isNearby(current, d.Region) })
		}
		if next < 0 {
			next = 0
		}
		ordered = append(ordered, remaining[next])
		remaining = slices.Delete(remaining, next, next+1)
	}
	return ordered
}
