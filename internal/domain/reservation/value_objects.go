package reservation

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinDuration = 30 * time.Minute
	MaxDuration = 2 * time.Hour

	MaxNoteLength = 500
)

var (
	ErrStartNotBeforeEnd = errors.New("start time must be before end time")
	ErrStartInPast       = errors.New("start time cannot be in the past")
	ErrDurationTooShort  = errors.New("reservation must be at least 30 minutes")
	ErrDurationTooLong   = errors.New("reservation cannot exceed 2 hours")
	ErrNoteTooLong       = errors.New("note exceeds maximum length")
)

// TimeSlot is a half-open [start, end) booking interval on a single day.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot validates ordering and the 30min..2h duration bounds. The
// past-start check lives in NewReservation where a clock is available.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrStartNotBeforeEnd
	}

	d := end.Sub(start)
	if d < MinDuration {
		return TimeSlot{}, ErrDurationTooShort
	}
	if d > MaxDuration {
		return TimeSlot{}, ErrDurationTooLong
	}

	return TimeSlot{start: start, end: end}, nil
}

// ReconstructTimeSlot rehydrates a slot from storage without re-validating.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Day returns the calendar day the slot belongs to, at UTC midnight.
func (ts TimeSlot) Day() time.Time {
	t := ts.start.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps is the half-open intersection test: back-to-back slots where one
// ends exactly when the other starts do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return other.start.Before(ts.end) && other.end.After(ts.start)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	if len(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
