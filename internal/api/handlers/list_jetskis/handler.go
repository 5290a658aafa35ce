package list_jetskis

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/fleet"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/fleet/models"
)

const (
	msgInvalidLocationID = "некорректный идентификатор локации"
	msgInvalidParams     = "некорректные параметры запроса"
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

// Handle GET /api/v1/jetskis?locationId=1&status=AVAILABLE
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListJetSkisRequest{}

	if raw := query.Get("locationId"); raw != "" {
		locationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || locationID <= 0 {
			h.logger.Warn("GET /jetskis - Invalid location id: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidLocationID)
			return
		}
		req.LocationID = &locationID
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.service.ListJetSkis(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("GET /jetskis - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /jetskis - Failed to list jetskis: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /jetskis - Fetched %d jetskis", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
