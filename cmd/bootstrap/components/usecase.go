package components

import (
	"courtbook/internal/domain/pricing"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/usecase"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	pricing.NewResolver,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserUseCase,
		commands.NewCourtUseCase,
		commands.NewTimeSlotUseCase,
		commands.NewBookingUseCase,
		commands.NewPricingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCourtQueries,
		queries.NewTimeSlotQueries,
		queries.NewBookingQueries,
		queries.NewPricingQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
