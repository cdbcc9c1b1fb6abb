// Package calendar holds the pure calendar rules behind date generation:
// the bank-holiday table, annual exclusion periods and day-counting helpers.
package calendar

import "time"

var daysPerMonth = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether the year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month,
// accounting for leap-year February.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}
