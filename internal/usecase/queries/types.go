package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data for the directory.
type RoomView struct {
	ID           uuid.UUID `json:"id"`
	RoomNumber   int       `json:"room_number"`
	BuildingCode string    `json:"building_code"`
	BuildingName string    `json:"building_name"`
	RoomType     string    `json:"room_type"`
	Capacity     int       `json:"capacity"`
	Computers    int       `json:"computers"`
	Whiteboards  int       `json:"whiteboards"`
	Rating       float64   `json:"rating"`
	RatingCount  int       `json:"rating_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReservationView represents one booked slot with enough room context to
// render a calendar row.
type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   int       `json:"room_number"`
	BuildingCode string    `json:"building_code"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationView represents a notification center entry. Reservation
// fields are populated for booking confirmations only.
type NotificationView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Kind          string     `json:"kind"`
	Status        string     `json:"status"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	RoomNumber    *int       `json:"room_number,omitempty"`
	BuildingCode  *string    `json:"building_code,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ReviewListItem represents one review row on a room page.
type ReviewListItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with
// authorization info.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// ProfileView represents the full profile surface.
type ProfileView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PreferenceAnswerView represents one recorded survey answer.
type PreferenceAnswerView struct {
	QuestionIndex int       `json:"question_index"`
	OptionIndex   int       `json:"option_index"`
	UpdatedAt     time.Time `json:"updated_at"`
}
