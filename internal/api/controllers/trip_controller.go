package controllers

import (
	"bytes"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"log"
	"net/http"
	"strings"
	"voyage/internal/config"
	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/planner"
	"voyage/internal/render"
	"voyage/internal/services"
	"voyage/internal/web"
	mem "voyage/pkg/memcache"
	"voyage/pkg/utils"
)

const (
	clientCookie  = "voyage_client"
	clientMaxAge  = 30 * 24 * 60 * 60
	busyMessage   = "⏳ A trip is already being planned. Please wait for it to finish."
	backendErrMsg = "Error planning trip. Please try again."
)

type TripController struct {
	requests *services.RequestController
	backend  services.TripPlannerInterface
	renderer *render.Renderer
	inFlight mem.InFlightStore
	cfg      config.Config
}

func NewTripController(
	requests *services.RequestController,
	mock *services.MockPlanner,
	renderer *render.Renderer,
	inFlight mem.InFlightStore,
	cfg config.Config,
) *TripController {
	return &TripController{
		requests: requests,
		backend:  mock,
		renderer: renderer,
		inFlight: inFlight,
		cfg:      cfg,
	}
}

// ShowPageHandler serves the empty planning form.
// @Summary Planning page
// @Produce html
// @Router / [get]
func (tc *TripController) ShowPageHandler(c *gin.Context) {
	tc.writePage(c, http.StatusOK, web.Page{Days: "3"})
}

// SubmitPlanHandler runs one planning attempt for the form values and
// renders the page with the results region filled in.
// @Summary Plan a trip from the form
// @Accept x-www-form-urlencoded
// @Produce html
// @Router / [post]
func (tc *TripController) SubmitPlanHandler(c *gin.Context) {
	var form request_models.TripForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	page := web.Page{UserInput: form.UserInput, Days: form.Days}
	results := &render.Buffer{}

	clientKey := tc.clientKey(c)
	requestID := c.GetString("trace_id")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	if !tc.inFlight.Acquire(clientKey, requestID, tc.cfg.InFlightTTL) {
		running, _ := tc.inFlight.Peek(clientKey)
		log.Printf("trace=%s client %s already has request %s running", requestID, clientKey, running)
		_ = tc.renderer.Message(results, "loading", busyMessage)
		page.Results = results.HTML()
		tc.writePage(c, utils.StatusFor(utils.ErrRequestInFlight), page)
		return
	}
	defer tc.inFlight.Release(clientKey, requestID)

	out := tc.requests.Run(c.Request.Context(), results, form.UserInput, form.Days, func(s services.State) {
		log.Printf("trace=%s state=%s", requestID, s)
	})
	page.Demo = out.Demo

	page.Results = results.HTML()
	status := http.StatusOK
	if out.Err != nil && !errors.Is(out.Err, utils.ErrNoDestinations) {
		status = utils.StatusFor(out.Err)
	}
	tc.writePage(c, status, page)
}

// PlanTripHandler is the JSON planning endpoint, backed by the demo planner.
// @Summary Plan a trip
// @Accept json
// @Produce json
// @Param request body request_models.PlanTripPayload true "Interests and trip length"
// @Success 200 {object} response_models.PlanResponse
// @Router /plan-trip [post]
func (tc *TripController) PlanTripHandler(c *gin.Context) {
	var payload request_models.PlanTripPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response_models.PlanResponse{Error: "Invalid request body."})
		return
	}

	days := services.DefaultDays
	if payload.Days != nil {
		days = *payload.Days
	}
	if days < 1 || days > 30 {
		c.JSON(http.StatusBadRequest, response_models.PlanResponse{Error: "Please choose between 1 and 30 days."})
		return
	}
	userInput := strings.TrimSpace(payload.UserInput)
	if userInput == "" {
		c.JSON(http.StatusBadRequest, response_models.PlanResponse{Error: "Please tell us about your interests first!"})
		return
	}

	plan, err := tc.backend.Plan(c.Request.Context(), userInput, days)
	if err != nil {
		log.Printf("trace=%s plan-trip failed: %v", c.GetString("trace_id"), err)
		c.JSON(http.StatusInternalServerError, response_models.PlanResponse{Error: backendErrMsg})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// InterestsHandler returns the interest tags found in q.
// @Summary Extract interests
// @Produce json
// @Param q query string true "Free-text description"
// @Router /api/interests [get]
func (tc *TripController) InterestsHandler(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.HandleServiceError(c, utils.ErrInvalidInput)
		return
	}
	utils.RespondSuccess(c, planner.ExtractInterests(q), "Interests extracted successfully")
}

// @Summary Health check
// @Produce json
// @Router /health [get]
func (tc *TripController) HealthHandler(c *gin.Context) {
	features := []string{"mock-planner", "interests"}
	if tc.requests.Networked() {
		features = append(features, "backend", "demo-fallback")
	}
	utils.RespondSuccess(c, response_models.HealthResponse{
		Status:   "ok",
		Mode:     string(tc.cfg.Mode),
		Features: features,
	}, "Service is healthy")
}

func (tc *TripController) writePage(c *gin.Context, status int, page web.Page) {
	page.StylePath = tc.cfg.AssetPath("static/style.css")
	page.ActionPath = tc.cfg.AssetPath("/")

	var buf bytes.Buffer
	if err := web.RenderPage(&buf, page); err != nil {
		log.Printf("trace=%s page render failed: %v", c.GetString("trace_id"), err)
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// clientKey identifies a browser by cookie, minting one on first visit.
func (tc *TripController) clientKey(c *gin.Context) string {
	if v, err := c.Cookie(clientCookie); err == nil {
		if _, perr := uuid.Parse(v); perr == nil {
			return v
		}
	}
	key := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(clientCookie, key, clientMaxAge, tc.cookiePath(), "", false, true)
	return key
}

func (tc *TripController) cookiePath() string {
	if tc.cfg.BasePath == "" {
		return "/"
	}
	return tc.cfg.BasePath
}
