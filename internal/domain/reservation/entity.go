package reservation

import (
	"errors"
	"time"

	"sitsmart/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrReservationCanceled = errors.New("reservation is already canceled")
	ErrNotPending          = errors.New("reservation is not awaiting confirmation")
)

type Services struct {
	Clock clock.Clock
}

type Reservation struct {
	id        uuid.UUID
	roomID    uuid.UUID
	userID    uuid.UUID
	timeSlot  TimeSlot
	status    Status
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds a pending reservation for a room slot. Overlap with
// existing reservations is the booking command's responsibility; only
// slot-local rules are checked here.
func NewReservation(
	services *Services,
	roomID uuid.UUID,
	userID uuid.UUID,
	slot TimeSlot,
	note Note,
) (*Reservation, error) {
	now := services.Clock.Now()
	if slot.Start().Before(now) {
		return nil, ErrStartInPast
	}

	return &Reservation{
		id:        uuid.New(),
		roomID:    roomID,
		userID:    userID,
		timeSlot:  slot,
		status:    StatusPendingConfirmation,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, roomID, userID uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		userID:    userID,
		timeSlot:  timeSlot,
		status:    status,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Confirm moves a pending reservation to confirmed.
func (r *Reservation) Confirm() error {
	switch r.status {
	case StatusPendingConfirmation:
		r.status = StatusConfirmed
		return nil
	case StatusCanceled:
		return ErrReservationCanceled
	default:
		return ErrNotPending
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusPendingConfirmation || r.status == StatusConfirmed
}

func (r *Reservation) IsCanceled() bool {
	return r.status == StatusCanceled
}

// HasEnded reports whether the slot's end time has passed; reviews are only
// allowed afterwards.
func (r *Reservation) HasEnded(now time.Time) bool {
	return now.After(r.timeSlot.End())
}

// ConflictsWith reports whether two reservations compete for the same room
// at intersecting times.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	return r.roomID == other.roomID && other.IsActive() && r.timeSlot.Overlaps(other.timeSlot)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Note() Note           { return r.note }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
