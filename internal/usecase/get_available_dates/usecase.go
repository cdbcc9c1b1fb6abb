// Package get_available_dates implements the availability query: postcodes
// and a booking type in, the ordered serviceable dates of the next six weeks
// out. The result is computed fresh on every call from the static round
// table, the calendar rules and the injected clock; nothing is reserved and
// nothing is stored.
package get_available_dates

import (
	"context"
	"sort"

	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
)

// UseCase computes available service dates for customer postcodes
type UseCase struct {
	schedule     ScheduleSource
	occupancy    OccupancyProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability use case. Occupancy defaults to
// ZeroOccupancy, reproducing the capacity-ceiling behaviour; pass a real
// provider to make remaining capacity reflect committed bookings.
func NewUseCase(scheduleSource ScheduleSource, occupancy OccupancyProvider, logger Logger) *UseCase {
	if occupancy == nil {
		occupancy = ZeroOccupancy{}
	}
	return &UseCase{
		schedule:     scheduleSource,
		occupancy:    occupancy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider overrides the clock; used by tests and diagnostics
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs the availability query.
//
// Coverage gaps never fail the caller: unknown postcodes, rounds with
// malformed anchors and recurrences that miss the horizon all degrade to an
// empty (or shorter) list, so the booking form always has something to
// render. Only requests that are unusable as such (no postcodes, unknown
// booking type) return ErrInvalidInput.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: postcodes=%v, bookingType=%s", req.Postcodes, req.BookingType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	bookingType := req.BookingType
	if bookingType == "" {
		bookingType = domain.BookingStandard
	}
	includeHolidays := bookingType.IncludesHolidays()

	today := startOfDay(uc.timeProvider.Now())

	resolution := uc.schedule.Resolve(req.Postcodes)
	if !resolution.Covered() {
		uc.logger.Info("GetAvailableDates: no round covers postcodes=%v", req.Postcodes)
		return &Response{BookingType: bookingType, Dates: []domain.AvailableDate{}}, nil
	}

	var dates []domain.AvailableDate

	if resolution.FridayOnly {
		area := domain.FridayFallbackArea
		if len(resolution.Entries) > 0 {
			area = resolution.Entries[0].Area
		}
		capacity := uc.schedule.FridayCapacityFor(req.Postcodes)

		for _, d := range generateFridayOnlyDates(today, includeHolidays) {
			d.Area = area
			d.Capacity = capacity
			d.SpecialRule = domain.SpecialRuleFridayOnly
			dates = append(dates, d)
		}
	} else {
		for _, entry := range resolution.Entries {
			generated, err := generateRoundDates(entry.Anchor, entry.Weekday, today, includeHolidays)
			if err != nil {
				// One misconfigured round must not break the others
				uc.logger.Error("GetAvailableDates: skipping round %q: %v", entry.Area, err)
				continue
			}
			for _, d := range generated {
				d.Area = entry.Area
				d.Capacity = entry.Capacity
				dates = append(dates, d)
			}
		}
	}

	for i := range dates {
		d := &dates[i]
		d.BookingType = bookingType
		booked := uc.occupancy.BookedCount(ctx, d.Area, d.FullDate)
		remaining := d.Capacity - booked
		if remaining < 0 {
			remaining = 0
		}
		d.RemainingCapacity = remaining
		d.Status = domain.StatusFor(d.Capacity, remaining)
	}

	sort.SliceStable(dates, func(i, j int) bool {
		return dates[i].FullDate.Before(dates[j].FullDate)
	})

	if dates == nil {
		dates = []domain.AvailableDate{}
	}

	uc.logger.Info("GetAvailableDates: generated %d dates for postcodes=%v, bookingType=%s",
		len(dates), req.Postcodes, bookingType)

	return &Response{BookingType: bookingType, Dates: dates}, nil
}
