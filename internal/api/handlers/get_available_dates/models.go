package get_available_dates

import (
	"strings"

	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
	getAvailableDates "github.com/avonwash/WCS-AvailabilityService/internal/usecase/get_available_dates"
)

// AvailableDateRecord is the JSON shape rendered by the booking form
type AvailableDateRecord struct {
	DisplayLabel      string `json:"displayLabel"`
	FullDate          string `json:"fullDate"` // YYYY-MM-DD
	Year              int    `json:"year"`
	Area              string `json:"area"`
	BookingType       string `json:"bookingType"`
	Capacity          int    `json:"capacity"`
	RemainingCapacity int    `json:"remainingCapacity"`
	Status            string `json:"status"`
	SpecialRule       string `json:"specialRule,omitempty"`
}

// AvailableDatesResponse is the HTTP response body
type AvailableDatesResponse struct {
	BookingType string                `json:"bookingType"`
	Dates       []AvailableDateRecord `json:"dates"`
}

// ToUseCaseRequest builds the use case request from query parameters.
// Postcodes arrive comma-separated; the booking type may be empty.
func ToUseCaseRequest(postcodesParam, bookingTypeParam string) (*getAvailableDates.Request, error) {
	bookingType, err := domain.ParseBookingType(bookingTypeParam)
	if err != nil {
		return nil, err
	}

	var postcodes []string
	for _, pc := range strings.Split(postcodesParam, ",") {
		if trimmed := strings.TrimSpace(pc); trimmed != "" {
			postcodes = append(postcodes, trimmed)
		}
	}

	return &getAvailableDates.Request{
		Postcodes:   postcodes,
		BookingType: bookingType,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP body
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]AvailableDateRecord, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = AvailableDateRecord{
			DisplayLabel:      d.DisplayLabel,
			FullDate:          d.FullDate.Format(domain.DateFormat),
			Year:              d.Year,
			Area:              d.Area,
			BookingType:       string(d.BookingType),
			Capacity:          d.Capacity,
			RemainingCapacity: d.RemainingCapacity,
			Status:            string(d.Status),
			SpecialRule:       d.SpecialRule,
		}
	}

	return &AvailableDatesResponse{
		BookingType: string(resp.BookingType),
		Dates:       dates,
	}
}
