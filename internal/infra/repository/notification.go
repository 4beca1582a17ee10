package repository

import (
	"context"
	"time"

	"sitsmart/internal/domain/notification"
	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) (uuid.UUID, error) {
	const query = `
		INSERT INTO notifications (id, user_id, reservation_id, kind, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		n.ID(), n.UserID(), n.ReservationID(),
		n.Kind().String(), n.Status().String(),
		n.CreatedAt(), n.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}

	return id, nil
}

func (r *NotificationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	const query = `
		SELECT id, user_id, reservation_id, kind, status, created_at, updated_at
		FROM notifications
		WHERE id = $1
		FOR UPDATE`

	var (
		notifID, userID      uuid.UUID
		reservationID        *uuid.UUID
		kind, status         string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&notifID, &userID, &reservationID, &kind, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find notification", err)
	}

	return notification.ReconstructNotification(
		notifID, userID, reservationID,
		notification.Kind(kind), notification.Status(status),
		createdAt, updatedAt,
	), nil
}

func (r *NotificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status notification.Status) error {
	const query = `
		UPDATE notifications
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update notification status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

// ResolvePendingByKind closes any pending prompt of the given kind for the
// user. Used when a profile gap is filled or a reservation is canceled.
func (r *NotificationRepository) ResolvePendingByKind(ctx context.Context, userID uuid.UUID, kind notification.Kind) error {
	const query = `
		UPDATE notifications
		SET status = 'resolved', updated_at = now()
		WHERE user_id = $1 AND kind = $2 AND status = 'pending'`

	if _, err := r.db.Exec(ctx, query, userID, kind.String()); err != nil {
		return infra.WrapRepoErr("failed to resolve pending notifications", err)
	}
	return nil
}

// ResolvePendingByReservation closes pending booking confirmations that
// reference a reservation being canceled.
func (r *NotificationRepository) ResolvePendingByReservation(ctx context.Context, reservationID uuid.UUID) error {
	const query = `
		UPDATE notifications
		SET status = 'resolved', updated_at = now()
		WHERE reservation_id = $1 AND status = 'pending'`

	if _, err := r.db.Exec(ctx, query, reservationID); err != nil {
		return infra.WrapRepoErr("failed to resolve reservation notifications", err)
	}
	return nil
}

// HasPendingByKind reports whether the user already has a pending prompt of
// the given kind, to keep profile nags from piling up.
func (r *NotificationRepository) HasPendingByKind(ctx context.Context, userID uuid.UUID, kind notification.Kind) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1 AND kind = $2 AND status = 'pending'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, kind.String()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pending notifications", err)
	}
	return exists, nil
}
