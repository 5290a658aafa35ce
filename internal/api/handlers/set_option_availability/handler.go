package set_option_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/middleware"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/options"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/options/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOptionID    = "некорректный идентификатор опции аренды"
	msgOptionNotFound     = "опция аренды не найдена"
	msgAccessDenied       = "доступ запрещен"
)

type Handler struct {
	service OptionsService
	logger  Logger
}

func NewHandler(service OptionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rental-options/{optionId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	optionID, err := strconv.ParseInt(vars["optionId"], 10, 64)
	if err != nil || optionID <= 0 {
		h.logger.Warn("PATCH /rental-options/availability - Invalid option id: %s", vars["optionId"])
		handlers.RespondBadRequest(w, msgInvalidOptionID)
		return
	}

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rental-options/%d/availability - Invalid request body: %v", optionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.SetAvailability(r.Context(), optionID, &models.SetAvailabilityRequest{
		UserID:      userID,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, options.ErrOptionNotFound):
			h.logger.Warn("PATCH /rental-options/%d/availability - Option not found", optionID)
			handlers.RespondNotFound(w, msgOptionNotFound)

		case errors.Is(err, options.ErrAccessDenied):
			h.logger.Warn("PATCH /rental-options/%d/availability - Access denied: user_id=%d", optionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /rental-options/%d/availability - Failed to set availability: error=%v", optionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rental-options/%d/availability - Set available=%t: user_id=%d",
		optionID, req.IsAvailable, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
