package list_locations

import (
	"net/http"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
)

type Handler struct {
	service FleetService
	logger  Logger
}

func NewHandler(service FleetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListLocations(r.Context())
	if err != nil {
		h.logger.Error("GET /locations - Failed to list locations: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations - Fetched %d locations", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
