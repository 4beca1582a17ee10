//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"sitsmart/internal/domain/reservation"
	"sitsmart/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func services(now time.Time) *reservation.Services {
	return &reservation.Services{Clock: clock.NewMockClock(now)}
}

func TestNewReservation(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()
	note, _ := reservation.NewNote("")

	t.Run("future slot is accepted as pending", func(t *testing.T) {
		slot := mustSlot(t, at(14, 0), at(15, 0))

		res, err := reservation.NewReservation(services(at(10, 0)), roomID, userID, slot, note)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusPendingConfirmation, res.Status())
		assert.Equal(t, roomID, res.RoomID())
		assert.Equal(t, userID, res.UserID())
		assert.True(t, res.IsActive())
	})

	t.Run("timestamps are stamped from the clock", func(t *testing.T) {
		slot := mustSlot(t, at(14, 0), at(15, 0))

		res, err := reservation.NewReservation(services(at(10, 0)), roomID, userID, slot, note)
		require.NoError(t, err)

		assert.Equal(t, at(10, 0), res.CreatedAt())
		assert.Equal(t, at(10, 0), res.UpdatedAt())
	})

	t.Run("slot starting in the past is rejected", func(t *testing.T) {
		slot := mustSlot(t, at(14, 0), at(15, 0))

		_, err := reservation.NewReservation(services(at(14, 30)), roomID, userID, slot, note)
		require.ErrorIs(t, err, reservation.ErrStartInPast)
	})
}

func TestReservationConfirm(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()
	note, _ := reservation.NewNote("")
	slot := mustSlot(t, at(14, 0), at(15, 0))

	t.Run("pending can be confirmed once", func(t *testing.T) {
		res, err := reservation.NewReservation(services(at(10, 0)), roomID, userID, slot, note)
		require.NoError(t, err)

		require.NoError(t, res.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())

		require.ErrorIs(t, res.Confirm(), reservation.ErrNotPending)
	})

	t.Run("canceled cannot be confirmed", func(t *testing.T) {
		res := reservation.ReconstructReservation(
			uuid.New(), roomID, userID, slot,
			reservation.StatusCanceled, note, at(9, 0), at(9, 0),
		)
		require.ErrorIs(t, res.Confirm(), reservation.ErrReservationCanceled)
		assert.False(t, res.IsActive())
		assert.True(t, res.IsCanceled())
	})
}

func TestReservationHasEnded(t *testing.T) {
	res := reservation.ReconstructReservation(
		uuid.New(), uuid.New(), uuid.New(),
		mustSlot(t, at(14, 0), at(15, 0)),
		reservation.StatusConfirmed, reservation.Note{}, at(9, 0), at(9, 0),
	)

	assert.False(t, res.HasEnded(at(14, 59)), "one minute before end")
	assert.False(t, res.HasEnded(at(15, 0)), "exactly at end")
	assert.True(t, res.HasEnded(at(15, 1)), "one minute after end")
}

func TestReservationConflictsWith(t *testing.T) {
	roomID := uuid.New()
	note, _ := reservation.NewNote("")

	existing := reservation.ReconstructReservation(
		uuid.New(), roomID, uuid.New(),
		mustSlot(t, at(14, 30), at(15, 0)),
		reservation.StatusConfirmed, note, at(9, 0), at(9, 0),
	)

	t.Run("overlapping slot in same room conflicts", func(t *testing.T) {
		candidate := reservation.ReconstructReservation(
			uuid.New(), roomID, uuid.New(),
			mustSlot(t, at(14, 0), at(14, 45)),
			reservation.StatusPendingConfirmation, note, at(9, 0), at(9, 0),
		)
		assert.True(t, candidate.ConflictsWith(existing))
	})

	t.Run("same slot in another room does not conflict", func(t *testing.T) {
		candidate := reservation.ReconstructReservation(
			uuid.New(), uuid.New(), uuid.New(),
			mustSlot(t, at(14, 0), at(14, 45)),
			reservation.StatusPendingConfirmation, note, at(9, 0), at(9, 0),
		)
		assert.False(t, candidate.ConflictsWith(existing))
	})

	t.Run("canceled reservation does not conflict", func(t *testing.T) {
		canceled := reservation.ReconstructReservation(
			uuid.New(), roomID, uuid.New(),
			mustSlot(t, at(14, 30), at(15, 0)),
			reservation.StatusCanceled, note, at(9, 0), at(9, 0),
		)
		candidate := reservation.ReconstructReservation(
			uuid.New(), roomID, uuid.New(),
			mustSlot(t, at(14, 0), at(14, 45)),
			reservation.StatusPendingConfirmation, note, at(9, 0), at(9, 0),
		)
		assert.False(t, candidate.ConflictsWith(canceled))
	})
}
