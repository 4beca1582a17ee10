package repository

import (
	"context"
	"time"

	"sitsmart/internal/domain/user"
	"sitsmart/internal/infra"
	"sitsmart/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, display_name, avatar_url, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.DisplayName(), u.AvatarURL(),
		u.Role().String(), u.IsActive(), u.CreatedAt(), u.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, display_name, avatar_url, role, is_active, last_login, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.scanUser(ctx, query, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, display_name, avatar_url, role, is_active, last_login, created_at, updated_at
		FROM users
		WHERE email = $1`

	return r.scanUser(ctx, query, email)
}

func (r *UserRepository) scanUser(ctx context.Context, query string, arg any) (*user.User, error) {
	var (
		id                   uuid.UUID
		email, passwordHash  string
		displayName          string
		avatarURL            *string
		role                 string
		isActive             bool
		lastLogin            *time.Time
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&id, &email, &passwordHash, &displayName, &avatarURL,
		&role, &isActive, &lastLogin, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return user.ReconstructUser(
		id, user.ReconstructEmail(email), passwordHash, displayName, avatarURL,
		user.Role(role), isActive, lastLogin, createdAt, updatedAt,
	), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, displayName string, avatarURL *string) error {
	const query = `
		UPDATE users
		SET display_name = $2, avatar_url = $3, updated_at = now()
		WHERE id = $1`

	return r.execExpectingRow(ctx, query, "failed to update profile", id, displayName, avatarURL)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1`

	return r.execExpectingRow(ctx, query, "failed to update password", id, passwordHash)
}

func (r *UserRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	const query = `
		UPDATE users
		SET email = $2, updated_at = now()
		WHERE id = $1`

	return r.execExpectingRow(ctx, query, "failed to update email", id, email)
}

// Deactivate revokes access without removing rows. The email-change flow
// ends here until the new address is verified.
func (r *UserRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE users
		SET is_active = false, updated_at = now()
		WHERE id = $1`

	return r.execExpectingRow(ctx, query, "failed to deactivate user", id)
}

// Activate restores access after the account's email has been verified.
func (r *UserRepository) Activate(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE users
		SET is_active = true, updated_at = now()
		WHERE id = $1`

	return r.execExpectingRow(ctx, query, "failed to activate user", id)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE users
		SET last_login = now(), updated_at = now()
		WHERE id = $1`

	return r.execExpectingRow(ctx, query, "failed to update last login", id)
}

func (r *UserRepository) execExpectingRow(ctx context.Context, query, msg string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
