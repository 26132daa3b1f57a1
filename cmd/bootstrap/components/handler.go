package components

import (
	"canteen-reservation/internal/handler"
	"canteen-reservation/internal/handler/api"
	"canteen-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewMenuHandler,
		api.NewSettingsHandler,
		api.NewCalendarHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
