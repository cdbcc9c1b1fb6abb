package get_service_areas

import (
	"net/http"

	"github.com/avonwash/WCS-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	service AreasService
	logger  Logger
}

func NewHandler(service AreasService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/areas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRounds(r.Context())
	if err != nil {
		h.logger.Error("GET /areas - Failed to list rounds: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /areas - Returned %d rounds", result.TotalRounds)
	handlers.RespondJSON(w, http.StatusOK, result)
}
