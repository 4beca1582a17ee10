package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind       = errors.New("invalid notification kind")
	ErrNotPending        = errors.New("notification is not pending")
	ErrNotConfirmable    = errors.New("only booking confirmations can be confirmed")
	ErrNotResolvable     = errors.New("only profile notifications can be resolved")
	ErrMissingReservation = errors.New("booking confirmation requires a reservation")
)

type Notification struct {
	id            uuid.UUID
	userID        uuid.UUID
	reservationID *uuid.UUID
	kind          Kind
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBookingConfirmation issues the pending prompt that accompanies a
// freshly created reservation.
func NewBookingConfirmation(userID, reservationID uuid.UUID) (*Notification, error) {
	if reservationID == uuid.Nil {
		return nil, ErrMissingReservation
	}
	return newNotification(userID, &reservationID, KindBookingConfirmation), nil
}

// NewProfilePrompt issues a profile-completeness nag of the given kind.
func NewProfilePrompt(userID uuid.UUID, kind Kind) (*Notification, error) {
	if !kind.IsProfileKind() {
		return nil, ErrInvalidKind
	}
	return newNotification(userID, nil, kind), nil
}

func newNotification(userID uuid.UUID, reservationID *uuid.UUID, kind Kind) *Notification {
	now := time.Now()
	return &Notification{
		id:            uuid.New(),
		userID:        userID,
		reservationID: reservationID,
		kind:          kind,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstructNotification(
	id, userID uuid.UUID,
	reservationID *uuid.UUID,
	kind Kind,
	status Status,
	createdAt, updatedAt time.Time,
) *Notification {
	return &Notification{
		id:            id,
		userID:        userID,
		reservationID: reservationID,
		kind:          kind,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// IsOverdue reports whether a pending booking confirmation has outlived the
// grace window and should be swept.
func (n *Notification) IsOverdue(now time.Time, window time.Duration) bool {
	return n.kind == KindBookingConfirmation &&
		n.status == StatusPending &&
		now.Sub(n.createdAt) > window
}

// Confirm marks a booking confirmation as actioned in time.
func (n *Notification) Confirm() error {
	if n.kind != KindBookingConfirmation {
		return ErrNotConfirmable
	}
	if n.status != StatusPending {
		return ErrNotPending
	}
	n.status = StatusConfirmed
	n.updatedAt = time.Now()
	return nil
}

// Resolve closes a profile prompt after the user filled in the missing piece.
func (n *Notification) Resolve() error {
	if !n.kind.IsProfileKind() {
		return ErrNotResolvable
	}
	if n.status != StatusPending {
		return ErrNotPending
	}
	n.status = StatusResolved
	n.updatedAt = time.Now()
	return nil
}

// Expire moves an overdue booking confirmation to its terminal state.
func (n *Notification) Expire() error {
	if n.status != StatusPending {
		return ErrNotPending
	}
	n.status = StatusExpired
	n.updatedAt = time.Now()
	return nil
}

func (n *Notification) ID() uuid.UUID             { return n.id }
func (n *Notification) UserID() uuid.UUID         { return n.userID }
func (n *Notification) ReservationID() *uuid.UUID { return n.reservationID }
func (n *Notification) Kind() Kind                { return n.kind }
func (n *Notification) Status() Status            { return n.status }
func (n *Notification) IsPending() bool           { return n.status == StatusPending }
func (n *Notification) CreatedAt() time.Time      { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time      { return n.updatedAt }
