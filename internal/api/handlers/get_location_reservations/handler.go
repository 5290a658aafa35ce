package get_location_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/reservations"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/reservations/models"
)

const (
	msgInvalidLocationID = "некорректный идентификатор локации"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidJetSkiID   = "некорректный идентификатор гидроцикла"
	msgInvalidParams     = "некорректные параметры запроса"
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

// Handle GET /api/v1/locations/{locationId}/reservations?date=YYYY-MM-DD&jetSkiId=3&includeFinished=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /locations/reservations - Invalid location id: %s", vars["locationId"])
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	query := r.URL.Query()

	req := &models.GetLocationReservationsRequest{
		LocationID:      locationID,
		IncludeFinished: query.Get("includeFinished") == "true",
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /locations/%d/reservations - Invalid date: %s", locationID, raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if raw := query.Get("jetSkiId"); raw != "" {
		jetSkiID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || jetSkiID <= 0 {
			h.logger.Warn("GET /locations/%d/reservations - Invalid jetski id: %s", locationID, raw)
			handlers.RespondBadRequest(w, msgInvalidJetSkiID)
			return
		}
		req.JetSkiID = &jetSkiID
	}

	result, err := h.service.GetByLocation(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /locations/%d/reservations - Invalid input: %v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /locations/%d/reservations - Failed to get reservations: error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/%d/reservations - Fetched %d reservations", locationID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
