package readstore

import (
	"context"

	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"
	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PreferenceReadStore struct {
	db db.DBTX
}

func NewPreferenceReadStore(dbtx db.DBTX) *PreferenceReadStore {
	return &PreferenceReadStore{db: dbtx}
}

func (s *PreferenceReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.PreferenceAnswerView, error) {
	const query = `
		SELECT question_index, option_index, updated_at
		FROM preference_answers
		WHERE user_id = $1
		ORDER BY question_index`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list preference answers", err)
	}

	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.PreferenceAnswerView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan preference answers", err)
	}
	return views, nil
}
