package components

import (
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/readstore"
	repo_impl "courtbook/internal/infra/repository"
	"courtbook/internal/usecase"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewCommandsDB,
		// Write side
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCourtRepository,
			fx.As(new(commands.CourtRepository)),
		),
		fx.Annotate(
			repo_impl.NewTimeSlotRepository,
			fx.As(new(commands.TimeSlotRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewPricingRuleRepository,
			fx.As(new(commands.PricingRuleRepository)),
		),
		fx.Annotate(
			repo_impl.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.UserReads)),
			fx.As(new(usecase.AuthReadStore)),
		),
		fx.Annotate(
			readstore.NewCourtReadStore,
			fx.As(new(queries.CourtReadStore)),
			fx.As(new(commands.CourtReads)),
		),
		fx.Annotate(
			readstore.NewTimeSlotReadStore,
			fx.As(new(queries.TimeSlotReadStore)),
			fx.As(new(commands.TimeSlotReads)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.BookingReads)),
		),
		fx.Annotate(
			readstore.NewPricingRuleReadStore,
			fx.As(new(queries.PricingRuleReadStore)),
			fx.As(new(commands.PricingRuleReads)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCommandsDB(pool *pgxpool.Pool) commands.DB {
	return pool
}
