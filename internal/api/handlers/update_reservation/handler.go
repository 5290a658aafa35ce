package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
	updateReservation "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный идентификатор брони"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidParams        = "некорректные параметры запроса"
	msgReservationNotFound  = "бронь не найдена"
	msgCannotBeEdited       = "бронь нельзя изменить: аренда уже началась или завершилась"
	msgLocationNotFound     = "локация не найдена"
	msgOptionNotFound       = "опция аренды не найдена"
	msgOptionUnavailable    = "опция аренды недоступна"
	msgJetSkiNotFound       = "гидроцикл не найден"
	msgJetSkiNotBookable    = "гидроцикл недоступен для бронирования"
	msgNotEnoughJetSkis     = "недостаточно гидроциклов для выбранной опции"
	msgJetSkisNotAvailable  = "гидроциклы заняты на выбранное время"
	msgOutsideHours         = "интервал аренды выходит за рабочие часы"
	msgReservationInPast    = "нельзя перенести бронь на прошедшее время"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PUT /reservations - Invalid reservation id: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/%d - Invalid request body: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PUT /reservations/%d - Failed to parse request: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/%d - Invalid input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/%d - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrCannotBeEdited):
			h.logger.Warn("PUT /reservations/%d - Reservation cannot be edited", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgCannotBeEdited)

		case errors.Is(err, updateReservation.ErrLocationNotFound):
			h.logger.Warn("PUT /reservations/%d - Location not found: location_id=%d", reservationID, req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, updateReservation.ErrRentalOptionNotFound):
			h.logger.Warn("PUT /reservations/%d - Rental option not found: option_id=%d", reservationID, req.RentalOptionID)
			handlers.RespondNotFound(w, msgOptionNotFound)

		case errors.Is(err, updateReservation.ErrRentalOptionUnavailable):
			h.logger.Warn("PUT /reservations/%d - Rental option unavailable: option_id=%d", reservationID, req.RentalOptionID)
			handlers.RespondBadRequest(w, msgOptionUnavailable)

		case errors.Is(err, updateReservation.ErrJetSkiNotFound):
			h.logger.Warn("PUT /reservations/%d - Jetski not found: jetskis=%v", reservationID, req.JetSkiIDs)
			handlers.RespondNotFound(w, msgJetSkiNotFound)

		case errors.Is(err, updateReservation.ErrJetSkiNotBookable):
			h.logger.Warn("PUT /reservations/%d - Jetski not bookable: jetskis=%v", reservationID, req.JetSkiIDs)
			handlers.RespondBadRequest(w, msgJetSkiNotBookable)

		case errors.Is(err, updateReservation.ErrNotEnoughJetSkis):
			h.logger.Warn("PUT /reservations/%d - Not enough jetskis: option_id=%d, jetskis=%v",
				reservationID, req.RentalOptionID, req.JetSkiIDs)
			handlers.RespondBadRequest(w, msgNotEnoughJetSkis)

		case errors.Is(err, updateReservation.ErrJetSkisNotAvailable):
			h.logger.Warn("PUT /reservations/%d - Jetskis not available: jetskis=%v, date=%s, start=%s",
				reservationID, req.JetSkiIDs, req.ReservationDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgJetSkisNotAvailable)

		case errors.Is(err, updateReservation.ErrOutsideOperatingHours):
			h.logger.Warn("PUT /reservations/%d - Outside operating hours: start=%s", reservationID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, updateReservation.ErrReservationInPast):
			h.logger.Warn("PUT /reservations/%d - Reservation in past: date=%s, start=%s",
				reservationID, req.ReservationDate, req.StartTime)
			handlers.RespondBadRequest(w, msgReservationInPast)

		default:
			h.logger.Error("PUT /reservations/%d - Failed to update reservation: error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/%d - Reservation updated: jetskis=%v", reservationID, result.JetSkiIDs)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
