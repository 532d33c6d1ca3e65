package components

import (
	"campsite-booking/internal/handler"
	"campsite-booking/internal/handler/api"
	"campsite-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCampingHandler,
		api.NewSpotHandler,
		api.NewReservationHandler,
		api.NewCommentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
