package get_available_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avonwash/WCS-AvailabilityService/internal/calendar"
	"github.com/avonwash/WCS-AvailabilityService/internal/schedule"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateRoundDates_WeekdayAndSpacing(t *testing.T) {
	// 2026-06-15 is a Monday; the anchor cycle lands exactly on it
	today := day(2026, time.June, 15)

	dates, err := generateRoundDates("18 May", time.Monday, today, false)
	require.NoError(t, err)
	require.Len(t, dates, 2)

	for _, d := range dates {
		assert.Equal(t, time.Monday, d.FullDate.Weekday())
		assert.False(t, d.FullDate.Before(today))
		assert.False(t, d.FullDate.After(today.AddDate(0, 0, 42)))
	}

	assert.Equal(t, day(2026, time.June, 15), dates[0].FullDate)
	assert.Equal(t, day(2026, time.July, 13), dates[1].FullDate)
	assert.Equal(t, 28*24*time.Hour, dates[1].FullDate.Sub(dates[0].FullDate))

	assert.Equal(t, "15 Jun", dates[0].DisplayLabel)
	assert.Equal(t, 2026, dates[0].Year)
}

func TestGenerateRoundDates_SkipsAheadToWeekday(t *testing.T) {
	// Candidate lands on a Tuesday; the cursor walks forward to Wednesday
	// before settling into the 28-day cadence
	today := day(2026, time.June, 15)

	dates, err := generateRoundDates("21 Apr", time.Wednesday, today, false)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, day(2026, time.June, 17), dates[0].FullDate)
	assert.Equal(t, day(2026, time.July, 15), dates[1].FullDate)
}

func TestGenerateRoundDates_BankHolidayExcluded(t *testing.T) {
	// 2026-08-31 is the summer bank holiday, a Monday on this cycle
	today := day(2026, time.August, 3)

	dates, err := generateRoundDates("03 Aug", time.Monday, today, false)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, day(2026, time.August, 3), dates[0].FullDate)
}

func TestGenerateRoundDates_BankHolidayIncludedOnRequest(t *testing.T) {
	today := day(2026, time.August, 3)

	dates, err := generateRoundDates("03 Aug", time.Monday, today, true)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, day(2026, time.August, 31), dates[1].FullDate)
	assert.True(t, calendar.IsBankHoliday(dates[1].FullDate))

	// An excluded slot never reschedules: the cadence still runs from the
	// excluded date, so including holidays restores the original 28-day grid
	assert.Equal(t, 28*24*time.Hour, dates[1].FullDate.Sub(dates[0].FullDate))
}

func TestGenerateRoundDates_ChristmasBlackout(t *testing.T) {
	// 2025-12-29 falls inside the Dec 23 -> Jan 3 shutdown
	today := day(2025, time.December, 1)

	dates, err := generateRoundDates("01 Dec", time.Monday, today, false)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, day(2025, time.December, 1), dates[0].FullDate)

	withHolidays, err := generateRoundDates("01 Dec", time.Monday, today, true)
	require.NoError(t, err)
	require.Len(t, withHolidays, 2)
	assert.Equal(t, day(2025, time.December, 29), withHolidays[1].FullDate)
}

func TestGenerateRoundDates_AnchorBeyondHorizon(t *testing.T) {
	// Anchor sits months ahead of the reference date: no recurrence inside
	// the 42-day window is a valid empty result, not an error
	today := day(2026, time.June, 15)

	dates, err := generateRoundDates("01 Dec", time.Monday, today, false)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestGenerateRoundDates_MalformedAnchor(t *testing.T) {
	today := day(2026, time.June, 15)

	_, err := generateRoundDates("sometime soon", time.Monday, today, false)
	assert.ErrorIs(t, err, schedule.ErrInvalidAnchor)
}

func TestGenerateFridayOnlyDates_WeeklyFridays(t *testing.T) {
	// Today is itself a Friday: same-day service is never offered, the
	// first date is a week out
	today := day(2026, time.June, 19)

	dates := generateFridayOnlyDates(today, false)
	require.Len(t, dates, 6)

	assert.Equal(t, day(2026, time.June, 26), dates[0].FullDate)
	for i, d := range dates {
		assert.Equal(t, time.Friday, d.FullDate.Weekday())
		assert.True(t, d.FullDate.After(today))
		assert.False(t, d.FullDate.After(today.AddDate(0, 0, 42)))
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, d.FullDate.Sub(dates[i-1].FullDate))
		}
	}
}

func TestGenerateFridayOnlyDates_HolidayFridaysExcluded(t *testing.T) {
	// Dec 26 is both a bank holiday and inside the shutdown; Jan 2 is
	// inside the shutdown only
	today := day(2025, time.December, 15)

	dates := generateFridayOnlyDates(today, false)
	got := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		got = append(got, d.FullDate)
	}
	assert.Equal(t, []time.Time{
		day(2025, time.December, 19),
		day(2026, time.January, 9),
		day(2026, time.January, 16),
		day(2026, time.January, 23),
	}, got)

	withHolidays := generateFridayOnlyDates(today, true)
	assert.Len(t, withHolidays, 6)
}
