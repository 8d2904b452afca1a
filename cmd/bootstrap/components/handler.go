package components

import (
	"courtbook/internal/handler"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewCourtHandler,
		api.NewTimeSlotHandler,
		api.NewBookingHandler,
		api.NewPricingHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	court *api.CourtHandler,
	timeSlot *api.TimeSlotHandler,
	booking *api.BookingHandler,
	pricing *api.PricingHandler,
	stats *api.StatsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		User:     user,
		Court:    court,
		TimeSlot: timeSlot,
		Booking:  booking,
		Pricing:  pricing,
		Stats:    stats,
	}
}
