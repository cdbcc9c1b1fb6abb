package get_area_coverage

import (
	"context"

	"github.com/avonwash/WCS-AvailabilityService/internal/service/areas/models"
)

type AreasService interface {
	Coverage(ctx context.Context, postcode string) (*models.CoverageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
