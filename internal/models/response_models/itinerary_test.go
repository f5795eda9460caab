package response_models

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestActivityInterestMapUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ActivityInterestMap
		wantErr string
	}{
		{
			name:  "keyed by index",
			input: `{"0": {"Forum": ["history"]}, "2": {"Gelato walk": ["food", "culture"]}}`,
			want: ActivityInterestMap{
				0: {"Forum": {"history"}},
				2: {"Gelato walk": {"food", "culture"}},
			},
		},
		{
			name:  "positional skips empty slots",
			input: `[{"Forum": ["history"]}, {}, {"Tapas crawl": ["food"]}]`,
			want: ActivityInterestMap{
				0: {"Forum": {"history"}},
				2: {"Tapas crawl": {"food"}},
			},
		},
		{name: "null", input: `null`, want: nil},
		{name: "empty object", input: `{}`, want: ActivityInterestMap{}},
		{name: "non-numeric key", input: `{"first": {"Forum": ["history"]}}`, wantErr: `invalid index "first"`},
		{name: "wrong shape", input: `"Forum"`, wantErr: "cannot unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ActivityInterestMap
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanResponseDecodesKeyedMap(t *testing.T) {
	body := `{
		"itinerary": [{"destination": "Rome", "country": "Italy", "days": 2, "score": 88, "activities": ["Forum"]}],
		"matched_interests": [["history"]],
		"activity_interest_map": {"0": {"Forum": ["history"]}}
	}`

	var plan PlanResponse
	require.NoError(t, json.Unmarshal([]byte(body), &plan))
	assert.Equal(t, []string{"history"}, plan.ActivityInterestMap.For(0)["Forum"])
	assert.Nil(t, plan.ActivityInterestMap.For(1))

	out, err := json.Marshal(plan)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"activity_interest_map":{"0":{"Forum":["history"]}}`)
}
