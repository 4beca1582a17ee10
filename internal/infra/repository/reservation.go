package repository

import (
	"context"
	"time"

	"sitsmart/internal/domain/reservation"
	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, room_id, user_id, start_time, end_time, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		res.ID(), res.RoomID(), res.UserID(),
		res.TimeSlot().Start(), res.TimeSlot().End(),
		res.Status().String(), res.Note().String(),
		res.CreatedAt(), res.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

// FindByIDForUpdate loads a reservation with a row lock so status moves
// stay serialized with the sweep.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, room_id, user_id, start_time, end_time, status, note, created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`

	return r.scanReservation(ctx, query, id)
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, room_id, user_id, start_time, end_time, status, note, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	return r.scanReservation(ctx, query, id)
}

func (r *ReservationRepository) scanReservation(ctx context.Context, query string, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, roomID, userID uuid.UUID
		start, end            time.Time
		status, note          string
		createdAt, updatedAt  time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resID, &roomID, &userID, &start, &end, &status, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	noteVO, err := reservation.NewNote(note)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation note in storage", err)
	}

	return reservation.ReconstructReservation(
		resID, roomID, userID,
		reservation.ReconstructTimeSlot(start, end),
		reservation.Status(status), noteVO,
		createdAt, updatedAt,
	), nil
}

// HasOverlap runs the half-open interval check against every active
// reservation for the room: conflict iff existing.start < end AND
// existing.end > start.
//
// A transaction-scoped advisory lock keyed on the room serializes
// concurrent bookings: at ReadCommitted two transactions checking the
// same slot would otherwise both see no overlap and both insert. The
// lock is released automatically at commit or rollback.
func (r *ReservationRepository) HasOverlap(ctx context.Context, roomID uuid.UUID, start, end time.Time) (bool, error) {
	const lockQuery = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`
	if _, err := r.db.Exec(ctx, lockQuery, roomID); err != nil {
		return false, infra.WrapRepoErr("failed to lock room for booking", err)
	}

	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE room_id = $1
			  AND status IN ('pending_confirmation', 'confirmed')
			  AND start_time < $3
			  AND end_time > $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, roomID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM reservations WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
