//go:build unit

package user_test

import (
	"testing"
	"time"

	"sitsmart/internal/domain/user"
	"sitsmart/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		role, _ := user.NewRole("student")
		expected := user.NewUser(email, "hashed_password", "Test Student", role)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "student role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("student") },
			},
			{
				name:   "faculty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("faculty") },
			},
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("janitor") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestUserProfileComplete(t *testing.T) {
	email, _ := user.NewEmail("test@example.com")

	t.Run("missing avatar is incomplete", func(t *testing.T) {
		u := user.NewUser(email, "hash", "Sam", user.RoleStudent)
		assert.False(t, u.ProfileComplete())
		assert.False(t, u.HasAvatar())
	})

	t.Run("empty display name is incomplete", func(t *testing.T) {
		avatar := "https://cdn.example.com/a.png"
		u := user.ReconstructUser(uuid.New(), email, "hash", "", &avatar, user.RoleStudent, true, nil, now(), now())
		assert.False(t, u.ProfileComplete())
		assert.True(t, u.HasAvatar())
	})

	t.Run("name and avatar set is complete", func(t *testing.T) {
		avatar := "https://cdn.example.com/a.png"
		u := user.ReconstructUser(uuid.New(), email, "hash", "Sam", &avatar, user.RoleStudent, true, nil, now(), now())
		assert.True(t, u.ProfileComplete())
	})
}

func now() time.Time { return time.Now() }

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
