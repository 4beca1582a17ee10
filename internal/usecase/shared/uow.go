package shared

import (
	"context"
	"time"

	"sitsmart/internal/domain/notification"
	"sitsmart/internal/domain/preference"
	"sitsmart/internal/domain/reservation"
	"sitsmart/internal/domain/review"
	"sitsmart/internal/domain/room"
	"sitsmart/internal/domain/user"
	"sitsmart/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Reviews() ReviewRepository
	Rooms() RoomRepository
	Users() UserRepository
	Preferences() PreferenceRepository
	AuthCodes() AuthCodeRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	HasOverlap(ctx context.Context, roomID uuid.UUID, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*notification.Notification, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status notification.Status) error
	ResolvePendingByKind(ctx context.Context, userID uuid.UUID, kind notification.Kind) error
	ResolvePendingByReservation(ctx context.Context, reservationID uuid.UUID) error
	HasPendingByKind(ctx context.Context, userID uuid.UUID, kind notification.Kind) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (uuid.UUID, error)
	ExistsByUserAndRoom(ctx context.Context, userID, roomID uuid.UUID) (bool, error)
}

type RoomRepository interface {
	Create(ctx context.Context, rm *room.Room) (uuid.UUID, error)
	RecalcRating(ctx context.Context, roomID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, displayName string, avatarURL *string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type PreferenceRepository interface {
	UpsertAnswer(ctx context.Context, userID uuid.UUID, a preference.Answer) error
}

type AuthCodeRepository interface {
	Issue(ctx context.Context, userID uuid.UUID, code, purpose string, expiresAt time.Time) error
	Redeem(ctx context.Context, userID uuid.UUID, code, purpose string) (bool, error)
}
