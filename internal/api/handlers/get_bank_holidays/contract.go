package get_bank_holidays

import (
	"context"

	"github.com/avonwash/WCS-AvailabilityService/internal/service/areas/models"
)

type AreasService interface {
	BankHolidays(ctx context.Context, year int) (*models.BankHolidaysResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
