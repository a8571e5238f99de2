package components

import (
	"rentloop/internal/domain/rental"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/usecase/commands"
	"rentloop/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	rental.NewFirstDayPriceCalculator,
	rental.NewDefaultHandoverPolicy,
	rental.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewItemCommands,
		commands.NewRentalCommands,
		commands.NewPaymentCommands,
		commands.NewHandoverCommands,
		commands.NewRatingCommands,
		commands.NewChatCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewRentalQueries,
	),
)
