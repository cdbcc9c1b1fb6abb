package get_available_dates

import (
	"time"

	"github.com/avonwash/WCS-AvailabilityService/internal/calendar"
	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
	"github.com/avonwash/WCS-AvailabilityService/internal/schedule"
)

// generateRoundDates produces the forward dates of a 28-day round cycle
// within the horizon, pre-tagging (area and capacity are filled in later).
//
// The candidate starts at the anchor's day/month in the reference year and
// is advanced by whole 28-day cycles until it reaches today, which keeps the
// perpetual cycle pinned to the historical anchor without yearly config
// edits. From there the cursor walks a day at a time until it lands on the
// target weekday, then jumps a full cycle after every candidate. A candidate
// excluded for a holiday does not reschedule; the cadence advances from the
// excluded date itself.
func generateRoundDates(anchorLabel string, target time.Weekday, today time.Time, includeHolidays bool) ([]domain.AvailableDate, error) {
	day, month, err := schedule.ParseAnchor(anchorLabel)
	if err != nil {
		return nil, err
	}

	candidate := time.Date(today.Year(), month, day, 0, 0, 0, 0, today.Location())
	for candidate.Before(today) {
		candidate = candidate.AddDate(0, 0, domain.RoundCycleDays)
	}

	horizon := today.AddDate(0, 0, domain.HorizonDays)

	var dates []domain.AvailableDate
	for d := candidate; !d.After(horizon); {
		if d.Weekday() != target {
			d = d.AddDate(0, 0, 1)
			continue
		}
		if includeHolidays || !isExcluded(d) {
			dates = append(dates, newDate(d))
		}
		d = d.AddDate(0, 0, domain.RoundCycleDays)
	}

	return dates, nil
}

// generateFridayOnlyDates produces weekly Friday dates within the horizon,
// starting at the first Friday strictly after today. When today is itself a
// Friday the first date is a week out; same-day service is never offered.
func generateFridayOnlyDates(today time.Time, includeHolidays bool) []domain.AvailableDate {
	d := today.AddDate(0, 0, 1)
	for d.Weekday() != time.Friday {
		d = d.AddDate(0, 0, 1)
	}

	horizon := today.AddDate(0, 0, domain.HorizonDays)

	var dates []domain.AvailableDate
	for ; !d.After(horizon); d = d.AddDate(0, 0, domain.FridayCycleDays) {
		if includeHolidays || !isExcluded(d) {
			dates = append(dates, newDate(d))
		}
	}

	return dates
}

// isExcluded applies the shared holiday test
func isExcluded(d time.Time) bool {
	return calendar.IsBankHoliday(d) || calendar.IsInHolidayPeriod(d)
}

func newDate(d time.Time) domain.AvailableDate {
	return domain.AvailableDate{
		DisplayLabel: d.Format(domain.DisplayFormat),
		FullDate:     d,
		Year:         d.Year(),
	}
}

// startOfDay truncates a time to local midnight
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
