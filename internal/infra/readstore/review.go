package readstore

import (
	"context"

	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"
	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (s *ReviewReadStore) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT rv.id, rv.user_id, u.display_name, rv.rating, rv.comment, rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.room_id = $1
		ORDER BY rv.created_at DESC`

	rows, err := s.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.ReviewListItem])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reviews", err)
	}
	return items, nil
}

// HasReviewed backs the UI gating flag on the calendar and room pages.
func (s *ReviewReadStore) HasReviewed(ctx context.Context, userID, roomID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reviews WHERE user_id = $1 AND room_id = $2
		)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, userID, roomID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
