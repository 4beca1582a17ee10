package readstore

import (
	"context"
	"time"

	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"
	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

const notificationViewSelect = `
	SELECT n.id, n.user_id, n.kind, n.status, n.reservation_id,
	       rm.room_number, rm.building_code, r.start_time, r.end_time,
	       n.created_at
	FROM notifications n
	LEFT JOIN reservations r ON r.id = n.reservation_id
	LEFT JOIN rooms rm ON rm.id = r.room_id`

// ListPendingByUser is what the notification center polls.
func (s *NotificationReadStore) ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]*queries.NotificationView, error) {
	query := notificationViewSelect + `
		WHERE n.user_id = $1 AND n.status = 'pending'
		ORDER BY n.created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending notifications", err)
	}

	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.NotificationView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan notifications", err)
	}
	return views, nil
}

// OverdueConfirmation is one sweep candidate: a pending booking
// confirmation past the grace window, with its reservation.
// ReservationID is nil when the reservation row is already gone
// (reservation_id is ON DELETE SET NULL).
type OverdueConfirmation struct {
	NotificationID uuid.UUID
	ReservationID  *uuid.UUID
}

// ListOverdueConfirmations feeds the expiry sweep. The cutoff is
// now - grace window; strict inequality, so a confirmation is swept only
// once the window has fully elapsed.
func (s *NotificationReadStore) ListOverdueConfirmations(ctx context.Context, cutoff time.Time, limit int32) ([]OverdueConfirmation, error) {
	const query = `
		SELECT id, reservation_id
		FROM notifications
		WHERE kind = 'booking_confirmation'
		  AND status = 'pending'
		  AND created_at < $1
		ORDER BY created_at
		LIMIT $2`

	rows, err := s.db.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue confirmations", err)
	}

	result, err := pgx.CollectRows(rows, pgx.RowToStructByPos[OverdueConfirmation])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan overdue confirmations", err)
	}
	return result, nil
}
