package bootstrap

import (
	"innbook/internal/infra/observability"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		observability.InitRegistry,
	),
)
