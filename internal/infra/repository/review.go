package repository

import (
	"context"

	"sitsmart/internal/domain/review"
	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, room_id, user_id, reservation_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		rev.ID(), rev.RoomID(), rev.UserID(), rev.ReservationID(),
		rev.Rating().Value(), rev.Comment().String(),
		rev.CreatedAt(), rev.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}

	return id, nil
}

// ExistsByUserAndRoom backs the one-review-per-room rule. The unique index
// on (user_id, room_id) is the authoritative guard; this is the pre-check.
func (r *ReviewRepository) ExistsByUserAndRoom(ctx context.Context, userID, roomID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reviews WHERE user_id = $1 AND room_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, roomID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check existing review", err)
	}
	return exists, nil
}
