package controllers_fx

import (
	"go.uber.org/fx"

	"aitrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController))
