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

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSelect = `
	SELECT r.id, r.user_id, r.room_id, rm.room_number, rm.building_code,
	       r.start_time, r.end_time, r.status, r.note, r.created_at
	FROM reservations r
	JOIN rooms rm ON rm.id = r.room_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := reservationViewSelect + `
		WHERE r.id = $1`

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	view, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[queries.ReservationView])
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	query := reservationViewSelect + `
		WHERE r.user_id = $1
		ORDER BY r.start_time`

	return s.collect(ctx, query, userID)
}

// ListByUserInWindow returns the user's reservations whose start falls in
// [from, to). Backs both the single-day filter and the week/month calendar.
func (s *ReservationReadStore) ListByUserInWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	query := reservationViewSelect + `
		WHERE r.user_id = $1
		  AND r.start_time >= $2
		  AND r.start_time < $3
		ORDER BY r.start_time`

	return s.collect(ctx, query, userID, from, to)
}

func (s *ReservationReadStore) collect(ctx context.Context, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.ReservationView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return views, nil
}
