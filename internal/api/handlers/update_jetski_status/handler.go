package update_jetski_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/middleware"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/fleet"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/fleet/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidJetSkiID    = "некорректный идентификатор гидроцикла"
	msgInvalidStatus      = "некорректный статус гидроцикла"
	msgJetSkiNotFound     = "гидроцикл не найден"
	msgAccessDenied       = "доступ запрещен"
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

// Handle PATCH /api/v1/jetskis/{jetskiId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	jetSkiID, err := strconv.ParseInt(vars["jetskiId"], 10, 64)
	if err != nil || jetSkiID <= 0 {
		h.logger.Warn("PATCH /jetskis/status - Invalid jetski id: %s", vars["jetskiId"])
		handlers.RespondBadRequest(w, msgInvalidJetSkiID)
		return
	}

	var req UpdateJetSkiStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /jetskis/%d/status - Invalid request body: %v", jetSkiID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.UpdateJetSkiStatus(r.Context(), jetSkiID, &models.UpdateJetSkiStatusRequest{
		UserID: userID,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("PATCH /jetskis/%d/status - Invalid status: %s", jetSkiID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, fleet.ErrJetSkiNotFound):
			h.logger.Warn("PATCH /jetskis/%d/status - Jetski not found", jetSkiID)
			handlers.RespondNotFound(w, msgJetSkiNotFound)

		case errors.Is(err, fleet.ErrAccessDenied):
			h.logger.Warn("PATCH /jetskis/%d/status - Access denied: user_id=%d", jetSkiID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /jetskis/%d/status - Failed to update status: error=%v", jetSkiID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /jetskis/%d/status - Status updated to %s: user_id=%d", jetSkiID, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
