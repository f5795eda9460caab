package controllers_fx

import (
	"go.uber.org/fx"
	"voyage/internal/api"
	"voyage/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripController),
	fx.Provide(api.NewRouter))
