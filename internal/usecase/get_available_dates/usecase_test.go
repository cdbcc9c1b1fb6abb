package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avonwash/WCS-AvailabilityService/internal/calendar"
	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
	"github.com/avonwash/WCS-AvailabilityService/internal/schedule"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubOccupancy struct {
	booked map[string]int // keyed by area + "|" + YYYY-MM-DD
}

func (s stubOccupancy) BookedCount(_ context.Context, area string, date time.Time) int {
	return s.booked[area+"|"+date.Format(domain.DateFormat)]
}

func newTestUseCase(today time.Time, occupancy OccupancyProvider) *UseCase {
	return NewUseCase(schedule.Default(), occupancy, nopLogger{}).
		WithTimeProvider(fixedClock{t: today})
}

func TestGetAvailableDates_FridayOnlyPostcode(t *testing.T) {
	uc := newTestUseCase(day(2026, time.June, 15), nil)

	resp, err := uc.Execute(context.Background(), &Request{Postcodes: []string{"BA6 8BH"}})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Dates)

	for _, d := range resp.Dates {
		assert.Equal(t, time.Friday, d.FullDate.Weekday())
		assert.Equal(t, domain.SpecialRuleFridayOnly, d.SpecialRule)
		assert.Equal(t, domain.FridayFallbackArea, d.Area)
		assert.Equal(t, 10, d.Capacity)
		assert.Equal(t, d.Capacity, d.RemainingCapacity)
		assert.Equal(t, domain.StatusAvailable, d.Status)
	}
}

func TestGetAvailableDates_UnknownPostcode(t *testing.T) {
	uc := newTestUseCase(day(2026, time.June, 15), nil)

	resp, err := uc.Execute(context.Background(), &Request{Postcodes: []string{"ZZ99"}})
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
	assert.NotNil(t, resp.Dates)
}

func TestGetAvailableDates_StandardRound(t *testing.T) {
	today := day(2026, time.June, 15)
	uc := newTestUseCase(today, nil)

	resp, err := uc.Execute(context.Background(), &Request{Postcodes: []string{"BS26 2AB"}})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Dates)

	for _, d := range resp.Dates {
		assert.Equal(t, time.Tuesday, d.FullDate.Weekday())
		assert.Equal(t, "Axbridge & Banwell", d.Area)
		assert.Equal(t, 8, d.Capacity)
		assert.Equal(t, domain.BookingStandard, d.BookingType)
		assert.Empty(t, d.SpecialRule)
		assert.False(t, d.FullDate.Before(today))
		assert.False(t, d.FullDate.After(today.AddDate(0, 0, 42)))
	}
}

func TestGetAvailableDates_MultiRoundPostcodeSorted(t *testing.T) {
	// BS27 sits on two routes (Wednesday and Thursday); results interleave
	// and must come back sorted ascending
	uc := newTestUseCase(day(2026, time.June, 15), nil)

	resp, err := uc.Execute(context.Background(), &Request{Postcodes: []string{"BS27 3XY"}})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(resp.Dates), 2)

	areas := map[string]bool{}
	for i, d := range resp.Dates {
		areas[d.Area] = true
		if i > 0 {
			assert.False(t, d.FullDate.Before(resp.Dates[i-1].FullDate), "dates out of order at %d", i)
		}
	}
	assert.Len(t, areas, 2)
}

func TestGetAvailableDates_MixedBatchCollapsesToFridayOnly(t *testing.T) {
	// A single Friday-exception postcode drags the whole batch onto the
	// Friday path. Pinned deliberately: any future change must be on purpose.
	uc := newTestUseCase(day(2026, time.June, 15), nil)

	resp, err := uc.Execute(context.Background(), &Request{Postcodes: []string{"BS26 2AB", "BA6 8BH"}})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Dates)

	for _, d := range resp.Dates {
		assert.Equal(t, time.Friday, d.FullDate.Weekday())
		assert.Equal(t, domain.SpecialRuleFridayOnly, d.SpecialRule)
		// The matched round lends its name to the Friday dates
		assert.Equal(t, "Axbridge & Banwell", d.Area)
	}
}

func TestGetAvailableDates_EmergencyIncludesBankHoliday(t *testing.T) {
	// 2026-08-31 (summer bank holiday) is on the Chew Valley Monday cycle
	today := day(2026, time.August, 3)
	uc := newTestUseCase(today, nil)

	standard, err := uc.Execute(context.Background(), &Request{Postcodes: []string{"BS40 5TX"}})
	require.NoError(t, err)
	for _, d := range standard.Dates {
		assert.False(t, calendar.IsBankHoliday(d.FullDate) || calendar.IsInHolidayPeriod(d.FullDate))
	}

	emergency, err := uc.Execute(context.Background(), &Request{
		Postcodes:   []string{"BS40 5TX"},
		BookingType: domain.BookingEmergency,
	})
	require.NoError(t, err)

	foundHoliday := false
	for _, d := range emergency.Dates {
		if calendar.IsBankHoliday(d.FullDate) {
			foundHoliday = true
		}
	}
	assert.True(t, foundHoliday, "emergency query should offer the bank holiday date")
}

func TestGetAvailableDates_OccupancyDrivesStatus(t *testing.T) {
	// The Axbridge round yields 2026-06-30 from this reference date
	today := day(2026, time.June, 15)
	serviceDate := "2026-06-30"

	tests := []struct {
		name          string
		booked        int
		wantRemaining int
		wantStatus    domain.DateStatus
	}{
		{"untouched", 0, 8, domain.StatusAvailable},
		{"nearly full", 7, 1, domain.StatusLimited},
		{"at threshold", 6, 2, domain.StatusLimited},
		{"full", 8, 0, domain.StatusFull},
		{"overbooked clamps to zero", 11, 0, domain.StatusFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occupancy := stubOccupancy{booked: map[string]int{
				"Axbridge & Banwell|" + serviceDate: tt.booked,
			}}
			uc := newTestUseCase(today, occupancy)

			resp, err := uc.Execute(context.Background(), &Request{Postcodes: []string{"BS26 2AB"}})
			require.NoError(t, err)
			require.Len(t, resp.Dates, 1)

			assert.Equal(t, serviceDate, resp.Dates[0].FullDate.Format(domain.DateFormat))
			assert.Equal(t, tt.wantRemaining, resp.Dates[0].RemainingCapacity)
			assert.Equal(t, tt.wantStatus, resp.Dates[0].Status)
		})
	}
}

func TestGetAvailableDates_DefaultsToStandard(t *testing.T) {
	uc := newTestUseCase(day(2026, time.June, 15), nil)

	resp, err := uc.Execute(context.Background(), &Request{Postcodes: []string{"BS26 2AB"}})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStandard, resp.BookingType)
}

func TestGetAvailableDates_InvalidInput(t *testing.T) {
	uc := newTestUseCase(day(2026, time.June, 15), nil)

	_, err := uc.Execute(context.Background(), &Request{Postcodes: nil})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Postcodes: []string{"   "}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Postcodes:   []string{"BS26"},
		BookingType: domain.BookingType("rushed"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAvailableDates_MisconfiguredRoundIsSkipped(t *testing.T) {
	// A round with a broken anchor must not take down the others
	table := &brokenAnchorSource{}
	uc := NewUseCase(table, nil, nopLogger{}).WithTimeProvider(fixedClock{t: day(2026, time.June, 15)})

	resp, err := uc.Execute(context.Background(), &Request{Postcodes: []string{"BS26"}})
	require.NoError(t, err)

	for _, d := range resp.Dates {
		assert.Equal(t, "Healthy", d.Area)
	}
	assert.NotEmpty(t, resp.Dates)
}

type brokenAnchorSource struct{}

func (s *brokenAnchorSource) Resolve(postcodes []string) schedule.Resolution {
	return schedule.Resolution{Entries: []domain.ScheduleEntry{
		{Postcodes: []string{"BS26"}, Area: "Broken", Anchor: "??", Weekday: time.Monday, Capacity: 8},
		{Postcodes: []string{"BS26"}, Area: "Healthy", Anchor: "18 May", Weekday: time.Monday, Capacity: 8},
	}}
}

func (s *brokenAnchorSource) FridayCapacityFor(postcodes []string) int {
	return domain.DefaultRoundCapacity
}
