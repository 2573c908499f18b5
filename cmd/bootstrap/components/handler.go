package components

import (
	"innbook/internal/handler"
	"innbook/internal/handler/api"
	"innbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		middleware.NewIdentityMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
