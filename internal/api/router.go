package api

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"voyage/internal/api/controllers"
	"voyage/internal/config"
	"voyage/internal/web"
	"voyage/pkg/middleware"
	"voyage/pkg/ratelimit"
)

func NewRouter(cfg config.Config, trips *controllers.TripController, limiter *ratelimit.KeyedLimiter) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, cfg, trips, limiter)
	return r
}

func RegisterRoutes(r *gin.Engine, cfg config.Config, trips *controllers.TripController, limiter *ratelimit.KeyedLimiter) {
	base := r.Group(cfg.BasePath + "/")
	base.StaticFS("/static", http.FS(web.Static()))
	base.GET("/", trips.ShowPageHandler)
	base.GET("/health", trips.HealthHandler)
	base.GET("/api/interests", trips.InterestsHandler)

	planning := base.Group("/")
	planning.Use(middleware.RateLimitMiddleware(limiter))
	planning.POST("/", trips.SubmitPlanHandler)
	planning.POST("/plan-trip", trips.PlanTripHandler)
}
