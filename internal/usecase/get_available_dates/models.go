package get_available_dates

import (
	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
)

// Request describes an availability query
type Request struct {
	Postcodes   []string           // raw customer-entered postcodes
	BookingType domain.BookingType // defaults to standard when empty
}

// Response carries the generated dates, sorted ascending.
// An empty list is a valid outcome (area not covered, or no recurrence
// inside the horizon), not an error.
type Response struct {
	BookingType domain.BookingType
	Dates       []domain.AvailableDate
}
