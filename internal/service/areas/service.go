// Package areas serves the admin dashboard's read-only views of the round
// configuration: the full table, coverage lookups for a single postcode and
// the bank-holiday calendar.
package areas

import (
	"context"
	"fmt"
	"sort"

	"github.com/avonwash/WCS-AvailabilityService/internal/calendar"
	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
	"github.com/avonwash/WCS-AvailabilityService/internal/service/areas/models"
)

// Service exposes round-table and calendar reads
type Service struct {
	schedule ScheduleSource
	logger   Logger
}

// NewService creates the areas service
func NewService(schedule ScheduleSource, logger Logger) *Service {
	return &Service{
		schedule: schedule,
		logger:   logger,
	}
}

// ListRounds returns the full configured round table
func (s *Service) ListRounds(ctx context.Context) (*models.RoundListResponse, error) {
	rounds := s.schedule.Rounds()

	out := make([]models.Round, 0, len(rounds))
	for _, entry := range rounds {
		out = append(out, models.FromDomainEntry(entry))
	}

	prefixes := s.schedule.FridayOnlyPrefixes()
	friday := make([]models.FridayPrefix, 0, len(prefixes))
	for prefix, capacity := range prefixes {
		friday = append(friday, models.FridayPrefix{Prefix: prefix, Capacity: capacity})
	}
	sort.Slice(friday, func(i, j int) bool { return friday[i].Prefix < friday[j].Prefix })

	s.logger.Info("ListRounds: returning %d rounds, %d friday-only prefixes", len(out), len(friday))

	return &models.RoundListResponse{
		Rounds:      out,
		FridayOnly:  friday,
		TotalRounds: len(out),
	}, nil
}

// Coverage reports which rounds service a single postcode
func (s *Service) Coverage(ctx context.Context, postcode string) (*models.CoverageResponse, error) {
	normalized := domain.NormalizePostcode(postcode)
	if normalized == "" {
		s.logger.Warn("Coverage: blank postcode")
		return nil, fmt.Errorf("%w: postcode is required", ErrInvalidInput)
	}

	resolution := s.schedule.Resolve([]string{postcode})

	rounds := make([]models.Round, 0, len(resolution.Entries))
	for _, entry := range resolution.Entries {
		rounds = append(rounds, models.FromDomainEntry(entry))
	}

	s.logger.Info("Coverage: postcode=%s covered=%t fridayOnly=%t rounds=%d",
		normalized, resolution.Covered(), resolution.FridayOnly, len(rounds))

	return &models.CoverageResponse{
		Postcode:   normalized,
		Covered:    resolution.Covered(),
		FridayOnly: resolution.FridayOnly,
		Rounds:     rounds,
	}, nil
}

// BankHolidays returns the tabulated bank holidays for a year. An
// untabulated year yields an empty list with Tabulated=false, mirroring the
// engine's behaviour of treating such years as holiday-free.
func (s *Service) BankHolidays(ctx context.Context, year int) (*models.BankHolidaysResponse, error) {
	if year < 1900 || year > 2200 {
		s.logger.Warn("BankHolidays: year %d out of range", year)
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidInput, year)
	}

	dates := calendar.HolidaysForYear(year)

	s.logger.Info("BankHolidays: year=%d dates=%d", year, len(dates))

	return &models.BankHolidaysResponse{
		Year:      year,
		Dates:     dates,
		Tabulated: len(dates) > 0,
	}, nil
}
