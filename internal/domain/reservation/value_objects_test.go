//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"sitsmart/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.April, 14, hour, min, 0, 0, time.UTC)
}

func mustSlot(t *testing.T, start, end time.Time) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlotDurationBounds(t *testing.T) {
	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "exactly 30 minutes",
			start: at(14, 0),
			end:   at(14, 30),
		},
		{
			name:  "exactly 2 hours",
			start: at(14, 0),
			end:   at(16, 0),
		},
		{
			name:  "90 minutes",
			start: at(14, 0),
			end:   at(15, 30),
		},
		{
			name:  "20 minutes is too short",
			start: at(14, 0),
			end:   at(14, 20),
			errIs: reservation.ErrDurationTooShort,
		},
		{
			name:  "29 minutes is too short",
			start: at(14, 0),
			end:   at(14, 29),
			errIs: reservation.ErrDurationTooShort,
		},
		{
			name:  "121 minutes is too long",
			start: at(14, 0),
			end:   at(16, 1),
			errIs: reservation.ErrDurationTooLong,
		},
		{
			name:  "zero duration",
			start: at(14, 0),
			end:   at(14, 0),
			errIs: reservation.ErrStartNotBeforeEnd,
		},
		{
			name:  "end before start",
			start: at(15, 0),
			end:   at(14, 0),
			errIs: reservation.ErrStartNotBeforeEnd,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := reservation.NewTimeSlot(tc.start, tc.end)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, slot.Start())
			assert.Equal(t, tc.end, slot.End())
			assert.Equal(t, tc.end.Sub(tc.start), slot.Duration())
		})
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a        reservation.TimeSlot
		b        reservation.TimeSlot
		overlaps bool
	}{
		{
			name:     "candidate straddles existing start",
			a:        mustSlot(t, at(14, 0), at(14, 45)),
			b:        mustSlot(t, at(14, 30), at(15, 0)),
			overlaps: true,
		},
		{
			name:     "identical slots",
			a:        mustSlot(t, at(14, 0), at(15, 0)),
			b:        mustSlot(t, at(14, 0), at(15, 0)),
			overlaps: true,
		},
		{
			name:     "existing contained in candidate",
			a:        mustSlot(t, at(13, 0), at(15, 0)),
			b:        mustSlot(t, at(13, 30), at(14, 0)),
			overlaps: true,
		},
		{
			name:     "candidate contained in existing",
			a:        mustSlot(t, at(13, 30), at(14, 0)),
			b:        mustSlot(t, at(13, 0), at(15, 0)),
			overlaps: true,
		},
		{
			name:     "back to back, candidate first",
			a:        mustSlot(t, at(13, 0), at(14, 0)),
			b:        mustSlot(t, at(14, 0), at(15, 0)),
			overlaps: false,
		},
		{
			name:     "back to back, candidate second",
			a:        mustSlot(t, at(14, 0), at(15, 0)),
			b:        mustSlot(t, at(13, 0), at(14, 0)),
			overlaps: false,
		},
		{
			name:     "disjoint slots",
			a:        mustSlot(t, at(9, 0), at(10, 0)),
			b:        mustSlot(t, at(14, 0), at(15, 0)),
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestTimeSlotDay(t *testing.T) {
	slot := mustSlot(t, at(14, 0), at(15, 30))
	assert.Equal(t, time.Date(2025, time.April, 14, 0, 0, 0, 0, time.UTC), slot.Day())
}

func TestNewNote(t *testing.T) {
	note, err := reservation.NewNote("projector needed")
	require.NoError(t, err)
	assert.Equal(t, "projector needed", note.String())
	assert.False(t, note.IsEmpty())

	empty, err := reservation.NewNote("")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	long := make([]byte, reservation.MaxNoteLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = reservation.NewNote(string(long))
	require.ErrorIs(t, err, reservation.ErrNoteTooLong)
}
