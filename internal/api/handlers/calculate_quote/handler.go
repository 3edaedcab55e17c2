package calculate_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/quote"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownCatalogKey  = "unknown service, vehicle class, condition or add-on"
)

type Handler struct {
	service QuoteService
	logger  Logger
}

func NewHandler(service QuoteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /quotes - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.CalculateQuote(req.ServiceKey, req.VehicleKey, req.ConditionKey, req.AddonKeys)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrInvalidCatalogKey):
			// Каталоги статические: неизвестный ключ означает рассинхрон клиента с сервером
			h.logger.Error("POST /quotes - %v", err)
			handlers.RespondBadRequest(w, msgUnknownCatalogKey)

		default:
			h.logger.Error("POST /quotes - Failed to calculate quote: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote calculated: service=%s, vehicle=%s, condition=%s, total=%s",
		req.ServiceKey, req.VehicleKey, req.ConditionKey, result.TotalPrice.String())
	handlers.RespondJSON(w, http.StatusOK, FromQuote(result))
}
