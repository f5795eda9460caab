package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/planner"
	"voyage/pkg/utils"
)

// TripPlannerInterface produces an itinerary for free-text interests.
type TripPlannerInterface interface {
	Plan(ctx context.Context, userInput string, days int) (*response_models.PlanResponse, error)
}

const (
	planTripPath     = "/plan-trip"
	maxResponseBytes = 4 << 20
)

// BackendPlanner calls a remote planning service.
type BackendPlanner struct {
	endpoint string
	client   *http.Client
}

func NewBackendPlanner(baseURL string, timeout time.Duration) *BackendPlanner {
	return &BackendPlanner{
		endpoint: baseURL + planTripPath,
		client:   &http.Client{Timeout: timeout},
	}
}

func (b *BackendPlanner) Plan(ctx context.Context, userInput string, days int) (*response_models.PlanResponse, error) {
	body, err := json.Marshal(request_models.PlanTripRequest{UserInput: userInput, Days: days})
	if err != nil {
		return nil, fmt.Errorf("encode plan request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build plan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &utils.TransportError{Reason: "planning service unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &utils.TransportError{Reason: fmt.Sprintf("Server error: %d", resp.StatusCode)}
	}

	var plan response_models.PlanResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&plan); err != nil {
		return nil, &utils.TransportError{Reason: "unreadable planning response", Err: err}
	}
	if plan.Error != "" {
		return nil, &utils.AppError{Message: plan.Error}
	}

	return &plan, nil
}

// MockPlanner runs the offline pipeline after a simulated network delay.
type MockPlanner struct {
	latency time.Duration
	seed    func() uint64
}

func NewMockPlanner(latency time.Duration) *MockPlanner {
	return &MockPlanner{latency: latency, seed: clockSeed}
}

// WithSeed pins the random source, for reproducible demo output.
func (m *MockPlanner) WithSeed(seed func() uint64) *MockPlanner {
	m.seed = seed
	return m
}

func (m *MockPlanner) Plan(ctx context.Context, userInput string, days int) (*response_models.PlanResponse, error) {
	if err := sleepContext(ctx, m.latency); err != nil {
		return nil, err
	}

	seed := m.seed()
	plan := planner.Plan(userInput, days, seed)
	log.Printf("mock planner: %d entries for %d days (seed=%d)", len(plan.Itinerary), days, seed)
	return plan, nil
}

func clockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
