package planner

import (
	"slices"
	"strings"
)

// Vocabulary is the fixed set of interest tags, in match order.
var Vocabulary = []string{
	"culture",
	"food",
	"nature",
	"adventure",
	"beach",
	"history",
	"shopping",
	"relaxation",
	"art",
	"photography",
}

const maxInterests = 4

type interestHeuristic struct {
	keywords  []string
	interests []string
}

// Secondary keywords consulted only when no vocabulary tag occurs in the
// text. First match wins.
var interestHeuristics = []interestHeuristic{
	{keywords: []string{"hiking", "mountain", "trek", "climb"}, interests: []string{"adventure", "nature"}},
	{keywords: []string{"museum", "temple", "ancient", "ruins"}, interests: []string{"history", "culture"}},
	{keywords: []string{"camera", "scenery", "sunset"}, interests: []string{"photography", "nature"}},
	{keywords: []string{"seaside", "ocean", "island", "surf", "tropical"}, interests: []string{"beach", "relaxation"}},
	{keywords: []string{"eating", "cuisine", "wine", "restaurant"}, interests: []string{"food", "culture"}},
	{keywords: []string{"market", "boutique", "mall"}, interests: []string{"shopping", "culture"}},
	{keywords: []string{"spa", "calm", "unwind", "quiet"}, interests: []string{"relaxation", "nature"}},
}

var defaultInterests = []string{"culture", "food", "nature"}

// ExtractInterests maps free text to at most four interest tags.
func ExtractInterests(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, tag := range Vocabulary {
		if strings.Contains(lower, tag) {
			found = append(found, tag)
			if len(found) == maxInterests {
				break
			}
		}
	}
	if len(found) > 0 {
		return found
	}

	for _, h := range interestHeuristics {
		if containsAny(lower, h.keywords) {
			return slices.Clone(h.interests)
		}
	}

	return slices.Clone(defaultInterests)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
