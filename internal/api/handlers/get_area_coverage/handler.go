package get_area_coverage

import (
	"errors"
	"net/http"

	"github.com/avonwash/WCS-AvailabilityService/internal/api/handlers"
	"github.com/avonwash/WCS-AvailabilityService/internal/service/areas"
)

const msgMissingPostcode = "postcode is required"

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

// Handle GET /api/v1/areas/coverage
// Query params: postcode (required)
//
// An uncovered postcode is a 200 with covered=false, not a 404: coverage is
// a question, and "no" is a valid answer the admin dashboard renders.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	postcode := r.URL.Query().Get("postcode")
	if postcode == "" {
		h.logger.Warn("GET /areas/coverage - Missing postcode")
		handlers.RespondBadRequest(w, msgMissingPostcode)
		return
	}

	result, err := h.service.Coverage(r.Context(), postcode)
	if err != nil {
		switch {
		case errors.Is(err, areas.ErrInvalidInput):
			h.logger.Warn("GET /areas/coverage - Invalid postcode %q: %v", postcode, err)
			handlers.RespondBadRequest(w, msgMissingPostcode)
		default:
			h.logger.Error("GET /areas/coverage - Failed: postcode=%q, error=%v", postcode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /areas/coverage - postcode=%s covered=%t", result.Postcode, result.Covered)
	handlers.RespondJSON(w, http.StatusOK, result)
}
