package response_models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ItineraryEntry is one destination-day record. Days is the total number of
// days assigned to the destination and repeats across its entries.
type ItineraryEntry struct {
	Destination         string   `json:"destination"`
	Country             string   `json:"country"`
	Region              string   `json:"region,omitempty"`
	Description         string   `json:"description"`
	Days                int      `json:"days"`
	Score               int      `json:"score"`
	Activities          []string `json:"activities"`
	ItinerarySuggestion string   `json:"itinerary_suggestion,omitempty"`
}

// SameDestination reports whether both entries belong to the same stop.
func (e ItineraryEntry) SameDestination(other ItineraryEntry) bool {
	return e.Destination == other.Destination && e.Country == other.Country
}

// ActivityInterestMap maps an itinerary index to activity text and the
// interest tags that justify highlighting it.
type ActivityInterestMap map[int]map[string][]string

// For returns the activity tags of the entry at index; nil when absent.
func (m ActivityInterestMap) For(index int) map[string][]string {
	if m == nil {
		return nil
	}
	return m[index]
}

// UnmarshalJSON accepts both the keyed object form ({"0": {...}}) and the
// positional array form ([{...}, {...}]) older backends emit.
func (m *ActivityInterestMap) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = nil
		return nil
	}

	out := ActivityInterestMap{}
	if trimmed[0] == '[' {
		var positional []map[string][]string
		if err := json.Unmarshal(trimmed, &positional); err != nil {
			return err
		}
		for i, activities := range positional {
			if len(activities) > 0 {
				out[i] = activities
			}
		}
		*m = out
		return nil
	}

	var keyed map[string]map[string][]string
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return err
	}
	for key, activities := range keyed {
		index, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("activity_interest_map: invalid index %q", key)
		}
		out[index] = activities
	}
	*m = out
	return nil
}

// PlanResponse is the wire shape of POST /plan-trip.
type PlanResponse struct {
	Itinerary           []ItineraryEntry    `json:"itinerary"`
	MatchedInterests    [][]string          `json:"matched_interests"`
	ActivityInterestMap ActivityInterestMap `json:"activity_interest_map"`
	Error               string              `json:"error,omitempty"`
}

type HealthResponse struct {
	Status   string   `json:"status"`
	Mode     string   `json:"mode"`
	Features []string `json:"features"`
}
