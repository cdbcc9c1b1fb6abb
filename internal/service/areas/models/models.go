package models

import (
	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
)

// Round describes one configured cleaning round
type Round struct {
	Area      string   `json:"area"`
	Postcodes []string `json:"postcodes"`
	Anchor    string   `json:"anchor"`
	Weekday   string   `json:"weekday"`
	Capacity  int      `json:"capacity"`
}

// FridayPrefix describes one Friday-only postcode prefix
type FridayPrefix struct {
	Prefix   string `json:"prefix"`
	Capacity int    `json:"capacity,omitempty"` // 0 = falls back to round/default capacity
}

// RoundListResponse is the full round table dump for the admin dashboard
type RoundListResponse struct {
	Rounds      []Round        `json:"rounds"`
	FridayOnly  []FridayPrefix `json:"fridayOnly"`
	TotalRounds int            `json:"totalRounds"`
}

// CoverageResponse answers "who services this postcode"
type CoverageResponse struct {
	Postcode   string  `json:"postcode"`
	Covered    bool    `json:"covered"`
	FridayOnly bool    `json:"fridayOnly"`
	Rounds     []Round `json:"rounds"`
}

// BankHolidaysResponse lists the tabulated bank holidays for one year
type BankHolidaysResponse struct {
	Year      int      `json:"year"`
	Dates     []string `json:"dates"`
	Tabulated bool     `json:"tabulated"` // false when the year is missing from the table
}

// FromDomainEntry converts a schedule entry into its admin representation
func FromDomainEntry(e domain.ScheduleEntry) Round {
	postcodes := make([]string, len(e.Postcodes))
	copy(postcodes, e.Postcodes)

	return Round{
		Area:      e.Area,
		Postcodes: postcodes,
		Anchor:    e.Anchor,
		Weekday:   e.Weekday.String(),
		Capacity:  e.Capacity,
	}
}
