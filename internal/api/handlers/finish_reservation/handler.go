package finish_reservation

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
	msgCannotFinish         = "аренду нельзя завершить: она не запущена или уже завершена"
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

// Handle PATCH /api/v1/reservations/{reservationId}/finish
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/finish - Invalid reservation id: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.Finish(r.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/%d/finish - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrCannotFinish):
			h.logger.Warn("PATCH /reservations/%d/finish - Reservation cannot be finished", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgCannotFinish)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/%d/finish - Access denied: user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /reservations/%d/finish - Failed to finish reservation: error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/%d/finish - Reservation finished: user_id=%d", reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
