package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	displayName  string
	avatarURL    *string
	role         Role
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, displayName string, role Role) *User {
	now := time.Now()
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash, displayName string,
	avatarURL *string,
	role Role,
	isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		avatarURL:    avatarURL,
		role:         role,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ProfileComplete reports whether the profile needs no follow-up prompts.
// An empty display name or missing avatar triggers the corresponding
// notification on the next profile fetch.
func (u *User) ProfileComplete() bool {
	return u.displayName != "" && u.avatarURL != nil && *u.avatarURL != ""
}

func (u *User) HasAvatar() bool {
	return u.avatarURL != nil && *u.avatarURL != ""
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) DisplayName() string   { return u.displayName }
func (u *User) AvatarURL() *string    { return u.avatarURL }
func (u *User) Role() Role            { return u.role }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
