package queries

import (
	"context"

	"github.com/google/uuid"

	"sitsmart/internal/infra"
	"sitsmart/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	ListPreferences(ctx context.Context, userID uuid.UUID) ([]*PreferenceAnswerView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	ProfileByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
}

type PreferenceReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PreferenceAnswerView, error)
}

type userQueriesImpl struct {
	readStore       UserReadStore
	preferenceStore PreferenceReadStore
}

func NewUserQueries(readStore UserReadStore, preferenceStore PreferenceReadStore) UserQueries {
	return &userQueriesImpl{
		readStore:       readStore,
		preferenceStore: preferenceStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	profile, err := q.readStore.ProfileByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (q *userQueriesImpl) ListPreferences(ctx context.Context, userID uuid.UUID) ([]*PreferenceAnswerView, error) {
	return q.preferenceStore.ListByUser(ctx, userID)
}
