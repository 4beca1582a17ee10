package repository

import (
	"context"

	"sitsmart/internal/domain/preference"
	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"

	"github.com/google/uuid"
)

type PreferenceRepository struct {
	db db.DBTX
}

func NewPreferenceRepository(dbtx db.DBTX) *PreferenceRepository {
	return &PreferenceRepository{db: dbtx}
}

// UpsertAnswer records or replaces the user's answer for one survey step.
func (r *PreferenceRepository) UpsertAnswer(ctx context.Context, userID uuid.UUID, a preference.Answer) error {
	const query = `
		INSERT INTO preference_answers (user_id, question_index, option_index, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, question_index)
		DO UPDATE SET option_index = EXCLUDED.option_index, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, userID, a.QuestionIndex(), a.OptionIndex()); err != nil {
		return infra.WrapRepoErr("failed to upsert preference answer", err)
	}
	return nil
}
