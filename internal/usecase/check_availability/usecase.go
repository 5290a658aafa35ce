package check_availability

import (
	"context"
	"fmt"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

// UseCase use case проверки конфликтов интервалов.
// Для каждого запрошенного гидроцикла определяет, пересекается ли
// предлагаемый интервал [start, end) хотя бы с одной существующей бронью.
// Буфер здесь НЕ применяется - он используется только генератором слотов
// при подсчете предлагаемого флота.
type UseCase struct {
	reservationRepo ReservationRepository
	jetSkiRepo      JetSkiRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	jetSkiRepo JetSkiRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		jetSkiRepo:      jetSkiRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности.
// Никогда не мутирует состояние; ошибки доступа к данным пробрасываются
// наверх и НЕ превращаются в ложное "свободно".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, interval=%s-%s, jetskis=%v, exclude=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.JetSkiIDs, req.ExcludeReservationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование всех запрошенных гидроциклов
	jetSkis, err := uc.jetSkiRepo.GetByIDs(ctx, req.JetSkiIDs)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get jetskis: %v", err)
		return nil, fmt.Errorf("%w: failed to get jetskis: %v", ErrInternal, err)
	}
	if len(jetSkis) != len(req.JetSkiIDs) {
		uc.logger.Warn("CheckAvailability: requested %d jetskis, found %d", len(req.JetSkiIDs), len(jetSkis))
		return nil, ErrJetSkiNotFound
	}

	proposed := domain.Interval{Start: req.StartTime, End: req.EndTime}

	// 3. Для каждого гидроцикла проверяем пересечение с его бронями
	results := make([]JetSkiAvailability, 0, len(req.JetSkiIDs))

	for _, jetSkiID := range req.JetSkiIDs {
		filter := domain.JetSkiReservationsFilter{
			JetSkiID:  jetSkiID,
			Date:      &req.Date,
			ExcludeID: req.ExcludeReservationID,
		}

		reservations, err := uc.reservationRepo.GetByJetSkiWithFilter(ctx, filter)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get reservations for jetski=%d: %v", jetSkiID, err)
			return nil, fmt.Errorf("%w: failed to get reservations for jetski %d: %v", ErrInternal, jetSkiID, err)
		}

		results = append(results, JetSkiAvailability{
			JetSkiID:  jetSkiID,
			Available: !hasConflict(proposed, reservations),
		})
	}

	response := &Response{Results: results}

	uc.logger.Info("CheckAvailability: date=%s, interval=%s-%s, allAvailable=%t, conflicts=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime,
		response.AllAvailable(), response.ConflictingIDs())

	return response, nil
}

// hasConflict проверяет, пересекается ли интервал хотя бы с одной бронью.
// Интервалы полуоткрытые: бронь, заканчивающаяся ровно в момент начала
// интервала (или начинающаяся ровно в момент его конца), конфликтом НЕ является.
func hasConflict(proposed domain.Interval, reservations []*domain.Reservation) bool {
	for _, res := range reservations {
		existing, err := res.Interval()
		if err != nil {
			// Некорректное время брони в хранилище - считаем занятым,
			// чтобы не выдать ложное "свободно"
			return true
		}
		if proposed.Overlaps(existing) {
			return true
		}
	}
	return false
}
