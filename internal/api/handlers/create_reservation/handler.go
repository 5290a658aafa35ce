package create_reservation

import (
	"errors"
	"net/http"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
	createReservation "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidParams       = "некорректные параметры запроса"
	msgLocationNotFound    = "локация не найдена"
	msgOptionNotFound      = "опция аренды не найдена"
	msgOptionUnavailable   = "опция аренды недоступна"
	msgJetSkiNotFound      = "гидроцикл не найден"
	msgJetSkiNotBookable   = "гидроцикл недоступен для бронирования"
	msgNotEnoughJetSkis    = "недостаточно гидроциклов для выбранной опции"
	msgJetSkisNotAvailable = "гидроциклы заняты на выбранное время"
	msgOutsideHours        = "интервал аренды выходит за рабочие часы"
	msgReservationInPast   = "нельзя забронировать прошедшее время"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, createReservation.ErrLocationNotFound):
			h.logger.Warn("POST /reservations - Location not found: location_id=%d", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createReservation.ErrRentalOptionNotFound):
			h.logger.Warn("POST /reservations - Rental option not found: option_id=%d", req.RentalOptionID)
			handlers.RespondNotFound(w, msgOptionNotFound)

		case errors.Is(err, createReservation.ErrRentalOptionUnavailable):
			h.logger.Warn("POST /reservations - Rental option unavailable: option_id=%d", req.RentalOptionID)
			handlers.RespondBadRequest(w, msgOptionUnavailable)

		case errors.Is(err, createReservation.ErrJetSkiNotFound):
			h.logger.Warn("POST /reservations - Jetski not found: jetskis=%v", req.JetSkiIDs)
			handlers.RespondNotFound(w, msgJetSkiNotFound)

		case errors.Is(err, createReservation.ErrJetSkiNotBookable):
			h.logger.Warn("POST /reservations - Jetski not bookable: jetskis=%v", req.JetSkiIDs)
			handlers.RespondBadRequest(w, msgJetSkiNotBookable)

		case errors.Is(err, createReservation.ErrNotEnoughJetSkis):
			h.logger.Warn("POST /reservations - Not enough jetskis: option_id=%d, jetskis=%v",
				req.RentalOptionID, req.JetSkiIDs)
			handlers.RespondBadRequest(w, msgNotEnoughJetSkis)

		case errors.Is(err, createReservation.ErrJetSkisNotAvailable):
			h.logger.Warn("POST /reservations - Jetskis not available: jetskis=%v, date=%s, start=%s",
				req.JetSkiIDs, req.ReservationDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgJetSkisNotAvailable)

		case errors.Is(err, createReservation.ErrOutsideOperatingHours):
			h.logger.Warn("POST /reservations - Outside operating hours: start=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createReservation.ErrReservationInPast):
			h.logger.Warn("POST /reservations - Reservation in past: date=%s, start=%s",
				req.ReservationDate, req.StartTime)
			handlers.RespondBadRequest(w, msgReservationInPast)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: location_id=%d, error=%v",
				req.LocationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, reference=%s, jetskis=%v",
		result.ID, result.Reference, result.JetSkiIDs)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
