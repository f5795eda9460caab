package request_models

// PlanTripRequest is the validated body sent to a planning backend.
type PlanTripRequest struct {
	UserInput string `json:"user_input" validate:"required"`
	Days      int    `json:"days" validate:"min=1,max=30"`
}

// PlanTripPayload is what POST /plan-trip accepts; a missing day count
// falls back to the default trip length.
type PlanTripPayload struct {
	UserInput string `json:"user_input"`
	Days      *int   `json:"days"`
}

// TripForm carries the raw values of the planning form.
type TripForm struct {
	UserInput string `form:"user_input"`
	Days      string `form:"days"`
}
