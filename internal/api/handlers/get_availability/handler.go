package get_availability

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-DetailingBooking/internal/usecase/get_availability"
)

const (
	msgMissingDate     = "date is required"
	msgMissingDuration = "duration is required"
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgInvalidDuration = "invalid duration, expected a number of hours"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), duration (required, hours)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := strings.TrimSpace(query.Get("date"))
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationStr := strings.TrimSpace(query.Get("duration"))
	if durationStr == "" {
		h.logger.Warn("GET /availability - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, durationStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			handlers.RespondBadRequest(w, msgInvalidDuration)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: date=%s, duration=%s, available=%d, degraded=%t",
		result.Date, durationStr, len(result.AvailableStarts), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
