package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"log"
	"strconv"
	"strings"
	"time"
	"voyage/internal/config"
	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/render"
	"voyage/pkg/utils"
)

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateRequesting State = "requesting"
	StateRendering  State = "rendering"
	StateError      State = "error"

	DefaultDays = 3
)

// StateObserver is told about every state transition of a run.
type StateObserver func(State)

// Outcome summarizes a finished run.
type Outcome struct {
	Request  request_models.PlanTripRequest
	Rendered bool
	Demo     bool
	Err      error
}

type ControllerOptions struct {
	// Networked enables the one-shot demo fallback after transport errors.
	Networked     bool
	FallbackDelay time.Duration
}

// RequestController validates input, plans through its strategy and
// renders the result into a target. One controller serves any number of
// targets; each Run owns its target for the duration of the call.
type RequestController struct {
	primary  TripPlannerInterface
	fallback TripPlannerInterface
	renderer *render.Renderer
	validate *validator.Validate
	opts     ControllerOptions
}

func NewRequestController(primary, fallback TripPlannerInterface, renderer *render.Renderer, opts ControllerOptions) *RequestController {
	if fallback == nil {
		opts.Networked = false
	}
	return &RequestController{
		primary:  primary,
		fallback: fallback,
		renderer: renderer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		opts:     opts,
	}
}

// BuildRequestController wires the strategies for the configured mode.
func BuildRequestController(cfg config.Config, mock *MockPlanner, renderer *render.Renderer) *RequestController {
	if cfg.Networked() {
		log.Printf("planner: networked mode, backend %s", cfg.BackendURL)
		return NewRequestController(
			NewBackendPlanner(cfg.BackendURL, cfg.BackendTimeout),
			mock,
			renderer,
			ControllerOptions{Networked: true, FallbackDelay: cfg.FallbackDelay},
		)
	}
	log.Printf("planner: static mode, using demo planner")
	return NewRequestController(mock, nil, renderer, ControllerOptions{})
}

func (c *RequestController) Networked() bool {
	return c.opts.Networked
}

// Run takes one planning attempt from raw form values to rendered output.
func (c *RequestController) Run(ctx context.Context, target render.Target, rawInput, rawDays string, observe StateObserver) Outcome {
	notify := func(s State) {
		if observe != nil {
			observe(s)
		}
	}
	defer notify(StateIdle)

	notify(StateValidating)
	req, err := c.Validate(rawInput, rawDays)
	if err != nil {
		c.showError(target, validationMessage(err))
		return Outcome{Request: req, Err: err}
	}

	c.show(target, "loading", render.LoadingMessage)
	notify(StateRequesting)
	plan, err := c.plan(ctx, c.primary, req)
	if err == nil {
		return c.present(target, req, plan, false, notify)
	}

	notify(StateError)
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		c.showError(target, "⚠️ "+appErr.Message)
		return Outcome{Request: req, Err: err}
	}

	c.showError(target, fmt.Sprintf("❌ Error planning trip: %s. Please try again.", err))
	log.Printf("planner: request for %d days failed: %v", req.Days, err)
	if !c.opts.Networked || !utils.IsTransport(err) {
		return Outcome{Request: req, Err: err}
	}

	if waitErr := sleepContext(ctx, c.opts.FallbackDelay); waitErr != nil {
		return Outcome{Request: req, Err: errors.Join(err, waitErr)}
	}

	log.Printf("planner: falling back to demo data")
	notify(StateRequesting)
	plan, fallbackErr := c.plan(ctx, c.fallback, req)
	if fallbackErr != nil {
		notify(StateError)
		c.showError(target, fmt.Sprintf("❌ Error planning trip: %s. Please try again.", fallbackErr))
		return Outcome{Request: req, Err: errors.Join(err, fallbackErr)}
	}
	return c.present(target, req, plan, true, notify)
}

// Validate trims the input and parses the day count. A blank day count
// means DefaultDays.
func (c *RequestController) Validate(rawInput, rawDays string) (request_models.PlanTripRequest, error) {
	req := request_models.PlanTripRequest{
		UserInput: strings.TrimSpace(rawInput),
		Days:      DefaultDays,
	}
	if d := strings.TrimSpace(rawDays); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			n = 0
		}
		req.Days = n
	}

	if err := c.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].StructField() {
			case "UserInput":
				return req, utils.ErrEmptyInput
			case "Days":
				return req, utils.ErrInvalidDays
			}
		}
		return req, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	return req, nil
}

func (c *RequestController) plan(ctx context.Context, strategy TripPlannerInterface, req request_models.PlanTripRequest) (*response_models.PlanResponse, error) {
	plan, err := strategy.Plan(ctx, req.UserInput, req.Days)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return &response_models.PlanResponse{}, nil
	}
	if plan.Error != "" {
		return nil, &utils.AppError{Message: plan.Error}
	}
	return plan, nil
}

func (c *RequestController) present(target render.Target, req request_models.PlanTripRequest, plan *response_models.PlanResponse, demo bool, notify StateObserver) Outcome {
	notify(StateRendering)
	out := Outcome{Request: req, Demo: demo}

	err := c.renderer.Render(target, render.Input{
		Itinerary:        plan.Itinerary,
		MatchedInterests: plan.MatchedInterests,
		ActivityMap:      plan.ActivityInterestMap,
		Days:             req.Days,
		UserInput:        req.UserInput,
	})
	if err != nil {
		log.Printf("planner: render failed: %v", err)
		c.showError(target, "❌ Error planning trip: could not display the itinerary. Please try again.")
		out.Err = err
		return out
	}

	if len(plan.Itinerary) == 0 {
		out.Err = utils.ErrNoDestinations
		return out
	}

	if demo {
		if err := c.renderer.Notice(target, render.DemoNotice); err != nil {
			log.Printf("planner: demo notice: %v", err)
		}
	}
	out.Rendered = true
	return out
}

func (c *RequestController) show(target render.Target, class, text string) {
	if err := c.renderer.Message(target, class, text); err != nil {
		log.Printf("planner: message: %v", err)
	}
}

func (c *RequestController) showError(target render.Target, text string) {
	c.show(target, "error", text)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, utils.ErrEmptyInput):
		return "⚠️ Please tell us about your interests first!"
	case errors.Is(err, utils.ErrInvalidDays):
		return "⚠️ Please choose between 1 and 30 days."
	default:
		return "⚠️ Please check your trip details and try again."
	}
}
