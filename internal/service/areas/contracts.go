package areas

import (
	"github.com/avonwash/WCS-AvailabilityService/internal/domain"
	"github.com/avonwash/WCS-AvailabilityService/internal/schedule"
)

// ScheduleSource exposes the round table reads the admin surface needs
type ScheduleSource interface {
	Rounds() []domain.ScheduleEntry
	FridayOnlyPrefixes() map[string]int
	Resolve(postcodes []string) schedule.Resolution
}

// Logger is the logging interface consumed by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
