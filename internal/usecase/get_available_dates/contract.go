package get_available_dates

import (
	"context"
	"time"

	"github.com/avonwash/WCS-AvailabilityService/internal/schedule"
)

// ScheduleSource resolves postcodes against the round table
type ScheduleSource interface {
	Resolve(postcodes []string) schedule.Resolution
	FridayCapacityFor(postcodes []string) int
}

// OccupancyProvider supplies the number of bookings already committed for an
// area on a date. The engine itself tracks nothing; wiring a real provider is
// what turns capacity ceilings into live availability.
type OccupancyProvider interface {
	BookedCount(ctx context.Context, area string, date time.Time) int
}

// ZeroOccupancy is the default provider: no bookings are ever counted, so
// every generated date keeps its full capacity.
type ZeroOccupancy struct{}

// BookedCount always returns zero
func (ZeroOccupancy) BookedCount(_ context.Context, _ string, _ time.Time) int {
	return 0
}

// TimeProvider supplies the reference time (injectable for testing)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the wall-clock provider used in production
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging interface consumed by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

var _ ScheduleSource = (*schedule.Table)(nil)
