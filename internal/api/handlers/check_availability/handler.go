package check_availability

import (
	"errors"
	"net/http"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers"
	checkAvailability "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidParams      = "некорректные параметры запроса"
	msgJetSkiNotFound     = "гидроцикл не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, checkAvailability.ErrJetSkiNotFound):
			h.logger.Warn("POST /availability/check - Jetski not found: jetskis=%v", req.JetSkiIDs)
			handlers.RespondNotFound(w, msgJetSkiNotFound)

		default:
			h.logger.Error("POST /availability/check - Failed to check availability: jetskis=%v, error=%v",
				req.JetSkiIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - Checked availability: jetskis=%v, allAvailable=%t",
		req.JetSkiIDs, result.AllAvailable())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
