package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
// Публичный endpoint - каталоги статические
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromCatalog(h.service.Catalog())

	h.logger.Info("GET /catalog - Catalog retrieved: services=%d, addons=%d",
		len(response.Services), len(response.Addons))
	handlers.RespondJSON(w, http.StatusOK, response)
}
