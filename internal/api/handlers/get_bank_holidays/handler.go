package get_bank_holidays

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avonwash/WCS-AvailabilityService/internal/api/handlers"
	"github.com/avonwash/WCS-AvailabilityService/internal/service/areas"
)

const (
	msgMissingYear = "year is required"
	msgInvalidYear = "invalid year"
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

// Handle GET /api/v1/bank-holidays
// Query params: year (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /bank-holidays - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /bank-holidays - Invalid year %q: %v", yearStr, err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	result, err := h.service.BankHolidays(r.Context(), year)
	if err != nil {
		switch {
		case errors.Is(err, areas.ErrInvalidInput):
			h.logger.Warn("GET /bank-holidays - Year %d rejected: %v", year, err)
			handlers.RespondBadRequest(w, msgInvalidYear)
		default:
			h.logger.Error("GET /bank-holidays - Failed: year=%d, error=%v", year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bank-holidays - year=%d dates=%d", year, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
