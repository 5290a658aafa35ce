package delete_reservation

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
	msgCannotDelete         = "нельзя удалить идущую аренду, сначала завершите ее"
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

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("DELETE /reservations - Invalid reservation id: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	if err := h.service.Delete(r.Context(), reservationID, userID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/%d - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrCannotDelete):
			h.logger.Warn("DELETE /reservations/%d - Reservation is running", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgCannotDelete)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/%d - Access denied: user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /reservations/%d - Failed to delete reservation: error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/%d - Reservation deleted: user_id=%d", reservationID, userID)
	handlers.RespondNoContent(w)
}
