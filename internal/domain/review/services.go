package review

import (
	"time"

	"sitsmart/internal/domain/reservation"

	"github.com/google/uuid"
)

// Eligibility is everything the checker needs to decide whether a review
// may be posted for a room.
type Eligibility struct {
	Reservation     *reservation.Reservation
	UserID          uuid.UUID
	RoomID          uuid.UUID
	AlreadyReviewed bool
	Now             time.Time
}

// Check enforces the posting rules: the reservation must belong to the user
// and the room, have been confirmed, and have ended; a user gets one review
// per room.
func Check(e Eligibility) error {
	if e.Reservation == nil ||
		e.Reservation.UserID() != e.UserID ||
		e.Reservation.RoomID() != e.RoomID {
		return ErrNotEligible
	}
	if e.Reservation.Status() != reservation.StatusConfirmed {
		return ErrNotEligible
	}
	if !e.Reservation.HasEnded(e.Now) {
		return ErrNotEligible
	}
	if e.AlreadyReviewed {
		return ErrAlreadyExists
	}
	return nil
}
