package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
)

// bankHolidays maps a calendar year to the England & Wales bank holidays in
// that year, as YYYY-MM-DD strings. The table is maintained by hand, not
// computed; extend it before the last tabulated year runs out. Years absent
// from the table are treated as having no bank holidays at all.
var bankHolidays = map[int][]string{
	2024: {
		"2024-01-01", // New Year's Day
		"2024-03-29", // Good Friday
		"2024-04-01", // Easter Monday
		"2024-05-06", // Early May bank holiday
		"2024-05-27", // Spring bank holiday
		"2024-08-26", // Summer bank holiday
		"2024-12-25", // Christmas Day
		"2024-12-26", // Boxing Day
	},
	2025: {
		"2025-01-01",
		"2025-04-18",
		"2025-04-21",
		"2025-05-05",
		"2025-05-26",
		"2025-08-25",
		"2025-12-25",
		"2025-12-26",
	},
	2026: {
		"2026-01-01",
		"2026-04-03",
		"2026-04-06",
		"2026-05-04",
		"2026-05-25",
		"2026-08-31",
		"2026-12-25",
		"2026-12-28", // Boxing Day substitute (26th falls on a Saturday)
	},
	2027: {
		"2027-01-01",
		"2027-03-26",
		"2027-03-29",
		"2027-05-03",
		"2027-05-31",
		"2027-08-30",
		"2027-12-27", // Christmas Day substitute
		"2027-12-28", // Boxing Day substitute
	},
}

// IsBankHoliday reports whether the given date is a tabulated bank holiday.
// Dates in years missing from the table always return false.
func IsBankHoliday(t time.Time) bool {
	dates, ok := bankHolidays[t.Year()]
	if !ok {
		return false
	}
	iso := t.Format(domain.DateFormat)
	for _, d := range dates {
		if d == iso {
			return true
		}
	}
	return false
}

// HolidaysForYear returns the tabulated bank holidays for a year, sorted
// ascending. The slice is a copy; an untabulated year yields an empty slice.
func HolidaysForYear(year int) []string {
	dates := bankHolidays[year]
	out := make([]string, len(dates))
	copy(out, dates)
	sort.Strings(out)
	return out
}

// TabulatedYears returns the years present in the bank-holiday table, sorted
func TabulatedYears() []int {
	years := make([]int, 0, len(bankHolidays))
	for y := range bankHolidays {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ValidateHolidays checks that every tabulated date parses and falls within
// the year it is filed under. Run at startup so a bad edit to the table is
// caught before it silently drops holidays.
func ValidateHolidays() error {
	for year, dates := range bankHolidays {
		for _, d := range dates {
			t, err := time.Parse(domain.DateFormat, d)
			if err != nil {
				return fmt.Errorf("bank holiday table: unparseable date %q under year %d: %w", d, year, err)
			}
			if t.Year() != year {
				return fmt.Errorf("bank holiday table: date %q filed under year %d", d, year)
			}
		}
	}
	return nil
}
