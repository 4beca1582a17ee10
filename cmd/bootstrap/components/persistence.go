package components

import (
	"sitsmart/internal/infra/db"
	"sitsmart/internal/infra/mailer"
	"sitsmart/internal/infra/readstore"
	"sitsmart/internal/infra/uow"
	"sitsmart/internal/usecase/commands"
	"sitsmart/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewPreferenceReadStore,
			fx.As(new(queries.PreferenceReadStore)),
		),
		fx.Annotate(
			mailer.NewLogMailer,
			fx.As(new(commands.CodeMailer)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
