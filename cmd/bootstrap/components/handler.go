package components

import (
	"travel-booking/internal/handler"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewInventoryHandler,
		api.NewCatalogHandler,
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewTransactionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
