package components

import (
	"innbook/internal/domain/pricing"
	"innbook/internal/domain/reservation"
	"innbook/internal/pkg/clock"
	"innbook/internal/usecase/commands"
	"innbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewSeasonalCalculator,
		fx.As(new(pricing.Calculator)),
	),
	reservation.NewFactory,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
	),
)
