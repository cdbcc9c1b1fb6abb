package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/avonwash/WCS-AvailabilityService/internal/api/handlers"
	getAvailableDates "github.com/avonwash/WCS-AvailabilityService/internal/usecase/get_available_dates"
)

const (
	msgMissingPostcodes   = "at least one postcode is required"
	msgInvalidRequest     = "invalid postcodes or booking type"
	msgInvalidBookingType = "unknown booking type, expected standard, priority or emergency"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: postcodes (required, comma-separated), bookingType (optional)
//
// A covered postcode with no serviceable dates and an uncovered postcode
// both return 200 with an empty dates list; the booking form decides how to
// word "not covered".
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	postcodesParam := r.URL.Query().Get("postcodes")
	if postcodesParam == "" {
		h.logger.Warn("GET /availability - Missing postcodes")
		handlers.RespondBadRequest(w, msgMissingPostcodes)
		return
	}

	bookingTypeParam := r.URL.Query().Get("bookingType")

	useCaseReq, err := ToUseCaseRequest(postcodesParam, bookingTypeParam)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid booking type %q: %v", bookingTypeParam, err)
		handlers.RespondBadRequest(w, msgInvalidBookingType)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: postcodes=%q, error=%v", postcodesParam, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /availability - Failed to get dates: postcodes=%q, error=%v", postcodesParam, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Dates retrieved: postcodes=%q, bookingType=%s, count=%d",
		postcodesParam, result.BookingType, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
