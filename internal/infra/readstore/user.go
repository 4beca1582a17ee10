package readstore

import (
	"context"
	"time"

	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"
	"sitsmart/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

// FindByEmail returns the authorization view plus the stored hash for
// credential checks. The hash never leaves the auth path.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := s.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &hash,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &view, nil
}

func (s *UserReadStore) ProfileByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	const query = `
		SELECT id, email, display_name, avatar_url, role, is_active, last_login, created_at
		FROM users
		WHERE id = $1`

	var (
		view      queries.ProfileView
		avatarURL *string
		lastLogin *time.Time
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.DisplayName, &avatarURL,
		&view.Role, &view.IsActive, &lastLogin, &view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile", err)
	}
	view.AvatarURL = avatarURL
	view.LastLogin = lastLogin
	return &view, nil
}
