package repository

import (
	"context"
	"time"

	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"

	"github.com/google/uuid"
)

type AuthCodeRepository struct {
	db db.DBTX
}

func NewAuthCodeRepository(dbtx db.DBTX) *AuthCodeRepository {
	return &AuthCodeRepository{db: dbtx}
}

// Issue stores a fresh code and invalidates earlier unconsumed codes of the
// same purpose so only the latest one redeems.
func (r *AuthCodeRepository) Issue(ctx context.Context, userID uuid.UUID, code, purpose string, expiresAt time.Time) error {
	const invalidate = `
		UPDATE auth_codes
		SET consumed_at = now()
		WHERE user_id = $1 AND purpose = $2 AND consumed_at IS NULL`

	if _, err := r.db.Exec(ctx, invalidate, userID, purpose); err != nil {
		return infra.WrapRepoErr("failed to invalidate previous codes", err)
	}

	const insert = `
		INSERT INTO auth_codes (id, user_id, code, purpose, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`

	if _, err := r.db.Exec(ctx, insert, uuid.New(), userID, code, purpose, expiresAt); err != nil {
		return infra.WrapRepoErr("failed to issue auth code", err)
	}
	return nil
}

// Redeem consumes a matching unexpired code. Returns false when no such
// code exists, without distinguishing wrong from expired.
func (r *AuthCodeRepository) Redeem(ctx context.Context, userID uuid.UUID, code, purpose string) (bool, error) {
	const query = `
		UPDATE auth_codes
		SET consumed_at = now()
		WHERE user_id = $1 AND code = $2 AND purpose = $3
		  AND consumed_at IS NULL AND expires_at > now()`

	tag, err := r.db.Exec(ctx, query, userID, code, purpose)
	if err != nil {
		return false, infra.WrapRepoErr("failed to redeem auth code", err)
	}
	return tag.RowsAffected() > 0, nil
}
