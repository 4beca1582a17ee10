// Package calendar provides the week/month window arithmetic behind the
// reservation calendar. All functions are pure: a window is fully determined
// by its pivot date, and paging is pivot arithmetic only.
package calendar

import (
	"errors"
	"time"
)

var ErrInvalidSpan = errors.New("span must be week or month")

type Span string

const (
	SpanWeek  Span = "week"
	SpanMonth Span = "month"
)

func (s Span) IsValid() bool {
	return s == SpanWeek || s == SpanMonth
}

// Window is a half-open [Start, End) date range at day granularity.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Days returns each day in the window in order.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.Start; d.Before(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday at or before the pivot.
func StartOfWeek(pivot time.Time) time.Time {
	d := StartOfDay(pivot)
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDate(0, 0, -offset)
}

func StartOfMonth(pivot time.Time) time.Time {
	return time.Date(pivot.Year(), pivot.Month(), 1, 0, 0, 0, 0, pivot.Location())
}

// WeekWindow is the seven days starting at the pivot's Monday.
func WeekWindow(pivot time.Time) Window {
	start := StartOfWeek(pivot)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

func MonthWindow(pivot time.Time) Window {
	start := StartOfMonth(pivot)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// NextWeek pages the pivot forward by one week window.
func NextWeek(pivot time.Time) time.Time {
	return StartOfWeek(pivot).AddDate(0, 0, 7)
}

func PrevWeek(pivot time.Time) time.Time {
	return StartOfWeek(pivot).AddDate(0, 0, -7)
}

func NextMonth(pivot time.Time) time.Time {
	return StartOfMonth(pivot).AddDate(0, 1, 0)
}

func PrevMonth(pivot time.Time) time.Time {
	return StartOfMonth(pivot).AddDate(0, -1, 0)
}

// WindowFor resolves a pivot and span to the matching window.
func WindowFor(pivot time.Time, span Span) (Window, error) {
	switch span {
	case SpanWeek:
		return WeekWindow(pivot), nil
	case SpanMonth:
		return MonthWindow(pivot), nil
	default:
		return Window{}, ErrInvalidSpan
	}
}
