package get_service_areas

import (
	"context"

	"github.com/avonwash/WCS-AvailabilityService/internal/service/areas/models"
)

type AreasService interface {
	ListRounds(ctx context.Context) (*models.RoundListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
