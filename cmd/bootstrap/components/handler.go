package components

import (
	"sitsmart/internal/handler"
	"sitsmart/internal/handler/api"
	"sitsmart/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewNotificationHandler,
		api.NewReviewHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	reservation *api.ReservationHandler,
	notification *api.NotificationHandler,
	review *api.ReviewHandler,
	profile *api.ProfileHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Room:         room,
		Reservation:  reservation,
		Notification: notification,
		Review:       review,
		Profile:      profile,
	}
}
