package planner_fx

import (
	"go.uber.org/fx"
	"voyage/internal/config"
	"voyage/internal/render"
	"voyage/internal/services"
)

var Module = fx.Provide(
	render.NewRenderer,
	provideMockPlanner,
	services.BuildRequestController,
)

func provideMockPlanner(cfg config.Config) *services.MockPlanner {
	return services.NewMockPlanner(cfg.MockLatency)
}
