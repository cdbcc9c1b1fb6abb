package calendar

import "time"

// ExclusionPeriod is an annual blackout defined by a month+day range,
// independent of the bank-holiday table. A period whose start month is later
// than its end month crosses the year boundary (e.g. Dec 23 -> Jan 3).
type ExclusionPeriod struct {
	Name       string
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// exclusionPeriods lists the configured annual blackouts. Only the
// Christmas/New Year shutdown is defined today.
var exclusionPeriods = []ExclusionPeriod{
	{Name: "Christmas shutdown", StartMonth: time.December, StartDay: 23, EndMonth: time.January, EndDay: 3},
}

// Contains reports whether the date's month and day fall inside the period,
// inclusive at both ends.
func (p ExclusionPeriod) Contains(t time.Time) bool {
	month, day := t.Month(), t.Day()

	if p.StartMonth > p.EndMonth {
		// Year-crossing range
		switch month {
		case p.StartMonth:
			return day >= p.StartDay
		case p.EndMonth:
			return day <= p.EndDay
		default:
			return month > p.StartMonth || month < p.EndMonth
		}
	}

	if month < p.StartMonth || month > p.EndMonth {
		return false
	}
	if month == p.StartMonth && day < p.StartDay {
		return false
	}
	if month == p.EndMonth && day > p.EndDay {
		return false
	}
	return true
}

// IsInHolidayPeriod reports whether the date falls inside any configured
// annual blackout period.
func IsInHolidayPeriod(t time.Time) bool {
	for _, p := range exclusionPeriods {
		if p.Contains(t) {
			return true
		}
	}
	return false
}
