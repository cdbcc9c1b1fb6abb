package domain

import "fmt"

// BookingType represents the query mode for availability requests
type BookingType string

const (
	BookingStandard  BookingType = "standard"
	BookingPriority  BookingType = "priority"
	BookingEmergency BookingType = "emergency"
)

// ParseBookingType parses a raw booking type string.
// An empty string defaults to BookingStandard.
func ParseBookingType(s string) (BookingType, error) {
	switch BookingType(s) {
	case "":
		return BookingStandard, nil
	case BookingStandard, BookingPriority, BookingEmergency:
		return BookingType(s), nil
	default:
		return "", fmt.Errorf("unknown booking type %q", s)
	}
}

// IncludesHolidays returns true if dates falling on bank holidays or inside
// the annual blackout period should still be offered for this booking type.
// Only emergency callouts are serviced on holidays.
func (b BookingType) IncludesHolidays() bool {
	return b == BookingEmergency
}
