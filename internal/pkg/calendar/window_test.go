//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"sitsmart/internal/pkg/calendar"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	testCases := []struct {
		name     string
		pivot    time.Time
		expected time.Time
	}{
		{"monday maps to itself", date(2025, time.March, 10), date(2025, time.March, 10)},
		{"wednesday maps back to monday", date(2025, time.March, 12), date(2025, time.March, 10)},
		{"sunday maps back six days", date(2025, time.March, 16), date(2025, time.March, 10)},
		{"time of day is dropped", time.Date(2025, time.March, 12, 17, 45, 3, 0, time.UTC), date(2025, time.March, 10)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, calendar.StartOfWeek(tc.pivot))
		})
	}
}

func TestWeekPagingIsPivotArithmetic(t *testing.T) {
	for _, pivot := range []time.Time{
		date(2025, time.March, 10),
		date(2025, time.March, 15),
		date(2024, time.December, 31),
		date(2025, time.January, 1),
	} {
		assert.Equal(t, calendar.StartOfWeek(pivot).AddDate(0, 0, 7), calendar.NextWeek(pivot))
		assert.Equal(t, calendar.StartOfWeek(pivot).AddDate(0, 0, -7), calendar.PrevWeek(pivot))
	}
}

func TestWeekWindow(t *testing.T) {
	w := calendar.WeekWindow(date(2025, time.March, 12))

	expected := calendar.Window{
		Start: date(2025, time.March, 10),
		End:   date(2025, time.March, 17),
	}
	if diff := cmp.Diff(expected, w); diff != "" {
		t.Fatalf("unexpected window (-want +got):\n%s", diff)
	}

	days := w.Days()
	require.Len(t, days, 7)
	assert.Equal(t, date(2025, time.March, 10), days[0])
	assert.Equal(t, date(2025, time.March, 16), days[6])

	assert.True(t, w.Contains(date(2025, time.March, 10)))
	assert.True(t, w.Contains(date(2025, time.March, 16)))
	assert.False(t, w.Contains(date(2025, time.March, 17)), "window end is exclusive")
}

func TestMonthWindow(t *testing.T) {
	t.Run("regular month", func(t *testing.T) {
		w := calendar.MonthWindow(date(2025, time.March, 18))
		assert.Equal(t, date(2025, time.March, 1), w.Start)
		assert.Equal(t, date(2025, time.April, 1), w.End)
	})

	t.Run("february in a leap year", func(t *testing.T) {
		w := calendar.MonthWindow(date(2024, time.February, 29))
		assert.Equal(t, date(2024, time.February, 1), w.Start)
		assert.Equal(t, date(2024, time.March, 1), w.End)
		assert.Len(t, w.Days(), 29)
	})

	t.Run("paging across a year boundary", func(t *testing.T) {
		assert.Equal(t, date(2026, time.January, 1), calendar.NextMonth(date(2025, time.December, 25)))
		assert.Equal(t, date(2024, time.December, 1), calendar.PrevMonth(date(2025, time.January, 3)))
	})
}

func TestWindowFor(t *testing.T) {
	pivot := date(2025, time.June, 11)

	week, err := calendar.WindowFor(pivot, calendar.SpanWeek)
	require.NoError(t, err)
	assert.Equal(t, calendar.WeekWindow(pivot), week)

	month, err := calendar.WindowFor(pivot, calendar.SpanMonth)
	require.NoError(t, err)
	assert.Equal(t, calendar.MonthWindow(pivot), month)

	_, err = calendar.WindowFor(pivot, calendar.Span("day"))
	assert.ErrorIs(t, err, calendar.ErrInvalidSpan)

	assert.True(t, calendar.SpanWeek.IsValid())
	assert.True(t, calendar.SpanMonth.IsValid())
	assert.False(t, calendar.Span("day").IsValid())
}
