package repository

import (
	"context"

	"sitsmart/internal/domain/room"
	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (uuid.UUID, error) {
	const query = `
		INSERT INTO rooms (id, room_number, building_code, building_name, room_type,
			capacity, computers, whiteboards, rating_avg, rating_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		rm.ID(), rm.Number(), rm.Building().Code(), rm.Building().Name(),
		rm.Type().String(), rm.Capacity(), rm.Computers(), rm.Whiteboards(),
		rm.Rating().Average(), rm.Rating().Count(),
		rm.CreatedAt(), rm.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}

	return id, nil
}

// RecalcRating recomputes the room aggregate from the review rows. Runs in
// the same transaction as the review insert so the surfaced rating never
// drifts from the reviews.
func (r *RoomRepository) RecalcRating(ctx context.Context, roomID uuid.UUID) error {
	const query = `
		UPDATE rooms
		SET rating_avg = COALESCE((
				SELECT ROUND(AVG(rating)::numeric, 1)
				FROM reviews WHERE room_id = $1
			), 0),
			rating_count = (SELECT COUNT(*) FROM reviews WHERE room_id = $1),
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to recalc room rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
