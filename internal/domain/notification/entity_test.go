//go:build unit

package notification_test

import (
	"testing"
	"time"

	"sitsmart/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graceWindow = 5 * time.Minute

func pendingAt(t *testing.T, kind notification.Kind, createdAt time.Time) *notification.Notification {
	t.Helper()
	var resID *uuid.UUID
	if kind == notification.KindBookingConfirmation {
		id := uuid.New()
		resID = &id
	}
	return notification.ReconstructNotification(
		uuid.New(), uuid.New(), resID, kind,
		notification.StatusPending, createdAt, createdAt,
	)
}

func TestNotificationIsOverdue(t *testing.T) {
	created := time.Date(2025, 4, 14, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		kind    notification.Kind
		status  notification.Status
		now     time.Time
		overdue bool
	}{
		{"four minutes in is still inside the window", notification.KindBookingConfirmation, notification.StatusPending, created.Add(4 * time.Minute), false},
		{"exactly five minutes is not yet overdue", notification.KindBookingConfirmation, notification.StatusPending, created.Add(5 * time.Minute), false},
		{"six minutes in is overdue", notification.KindBookingConfirmation, notification.StatusPending, created.Add(6 * time.Minute), true},
		{"confirmed notifications are never overdue", notification.KindBookingConfirmation, notification.StatusConfirmed, created.Add(time.Hour), false},
		{"profile prompts never expire", notification.KindProfileUpdate, notification.StatusPending, created.Add(time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := pendingAt(t, tc.kind, created)
			if tc.status != notification.StatusPending {
				require.NoError(t, n.Confirm())
			}
			assert.Equal(t, tc.overdue, n.IsOverdue(tc.now, graceWindow))
		})
	}
}

func TestNotificationConfirm(t *testing.T) {
	t.Run("pending booking confirmation confirms once", func(t *testing.T) {
		n := pendingAt(t, notification.KindBookingConfirmation, time.Now())
		require.NoError(t, n.Confirm())
		assert.Equal(t, notification.StatusConfirmed, n.Status())
		assert.ErrorIs(t, n.Confirm(), notification.ErrNotPending)
	})

	t.Run("profile prompt cannot be confirmed", func(t *testing.T) {
		n := pendingAt(t, notification.KindProfileUpdate, time.Now())
		assert.ErrorIs(t, n.Confirm(), notification.ErrNotConfirmable)
	})
}

func TestNotificationResolve(t *testing.T) {
	t.Run("pending profile prompt resolves", func(t *testing.T) {
		n := pendingAt(t, notification.KindProfilePictureUpdate, time.Now())
		require.NoError(t, n.Resolve())
		assert.Equal(t, notification.StatusResolved, n.Status())
		assert.True(t, n.Status().IsTerminal())
	})

	t.Run("booking confirmation cannot be resolved", func(t *testing.T) {
		n := pendingAt(t, notification.KindBookingConfirmation, time.Now())
		assert.ErrorIs(t, n.Resolve(), notification.ErrNotResolvable)
	})
}

func TestNotificationExpire(t *testing.T) {
	n := pendingAt(t, notification.KindBookingConfirmation, time.Now())
	require.NoError(t, n.Expire())
	assert.Equal(t, notification.StatusExpired, n.Status())
	assert.ErrorIs(t, n.Expire(), notification.ErrNotPending)
}

func TestNewBookingConfirmation(t *testing.T) {
	userID := uuid.New()
	resID := uuid.New()

	n, err := notification.NewBookingConfirmation(userID, resID)
	require.NoError(t, err)
	assert.Equal(t, notification.KindBookingConfirmation, n.Kind())
	assert.True(t, n.IsPending())
	require.NotNil(t, n.ReservationID())
	assert.Equal(t, resID, *n.ReservationID())

	_, err = notification.NewBookingConfirmation(userID, uuid.Nil)
	assert.ErrorIs(t, err, notification.ErrMissingReservation)
}

func TestNewProfilePrompt(t *testing.T) {
	n, err := notification.NewProfilePrompt(uuid.New(), notification.KindProfileUpdate)
	require.NoError(t, err)
	assert.Nil(t, n.ReservationID())

	_, err = notification.NewProfilePrompt(uuid.New(), notification.KindBookingConfirmation)
	assert.ErrorIs(t, err, notification.ErrInvalidKind)
}
