package components

import (
	"travel-booking/internal/usecase"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewAuthUseCase,
		commands.NewInventoryUseCase,
		commands.NewCatalogUseCase,
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewTransactionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
