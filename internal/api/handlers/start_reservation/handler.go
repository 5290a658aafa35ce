package start_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/middleware"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный идентификатор брони"
	msgReservationNotFound  = "бронь не найдена"
	msgCannotStart          = "аренду нельзя запустить: она уже идет или завершена"
	msgAccessDenied         = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/start
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/start - Invalid reservation id: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.Start(r.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/%d/start - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrCannotStart):
			h.logger.Warn("PATCH /reservations/%d/start - Reservation cannot be started", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgCannotStart)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/%d/start - Access denied: user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /reservations/%d/start - Failed to start reservation: error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/%d/start - Reservation started: user_id=%d", reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
