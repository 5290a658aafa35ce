package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	generateSlots "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/generate_slots"
)

const (
	msgInvalidLocationID = "некорректный идентификатор локации"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration   = "некорректная длительность аренды"
	msgInvalidCount      = "некорректное количество гидроциклов"
	msgInvalidParams     = "некорректные параметры запроса"
	msgLocationNotFound  = "локация не найдена"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/available-slots?date=YYYY-MM-DD&durationMinutes=60&requiredCount=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /available-slots - Invalid location id: %s", vars["locationId"])
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %s", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	durationMinutes, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid duration: %s", query.Get("durationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// requiredCount опционален, по умолчанию один гидроцикл
	requiredCount := 1
	if raw := query.Get("requiredCount"); raw != "" {
		requiredCount, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid required count: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidCount)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &generateSlots.Request{
		Date:            date,
		DurationMinutes: durationMinutes,
		RequiredCount:   requiredCount,
		LocationID:      &locationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, generateSlots.ErrLocationNotFound):
			h.logger.Warn("GET /available-slots - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /available-slots - Failed to generate slots: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Generated %d slots: location_id=%d, date=%s",
		len(result.Slots), locationID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
