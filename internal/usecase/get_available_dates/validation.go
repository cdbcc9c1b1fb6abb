package get_available_dates

import (
	"fmt"

	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
)

// validateRequest checks the request before generation
func validateRequest(req *Request) error {
	usable := 0
	for _, pc := range req.Postcodes {
		if domain.NormalizePostcode(pc) != "" {
			usable++
		}
	}
	if usable == 0 {
		return fmt.Errorf("%w: at least one postcode is required", ErrInvalidInput)
	}

	switch req.BookingType {
	case "", domain.BookingStandard, domain.BookingPriority, domain.BookingEmergency:
		return nil
	default:
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.BookingType)
	}
}
