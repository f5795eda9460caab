package config_fx

import (
	"go.uber.org/fx"
	"voyage/internal/config"
)

var Module = fx.Provide(config.Load)
