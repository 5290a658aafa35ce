package list_rental_options

import (
	"net/http"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
)

type Handler struct {
	service OptionsService
	logger  Logger
	// onlyAvailable=true на публичном роуте: скрытые опции не видны клиентам
	onlyAvailable bool
}

func NewHandler(service OptionsService, onlyAvailable bool, logger Logger) *Handler {
	return &Handler{
		service:       service,
		logger:        logger,
		onlyAvailable: onlyAvailable,
	}
}

// Handle GET /api/v1/rental-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), h.onlyAvailable)
	if err != nil {
		h.logger.Error("GET /rental-options - Failed to list options: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rental-options - Fetched %d options", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
