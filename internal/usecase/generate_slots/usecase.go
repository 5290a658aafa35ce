package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	locationRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/location"
)

// UseCase use case получения доступных слотов для бронирования.
// Без состояния между вызовами: каждый вызов заново читает брони дня,
// поэтому при неизменном хранилище одинаковые запросы дают одинаковый ответ.
type UseCase struct {
	reservationRepo ReservationRepository
	jetSkiRepo      JetSkiRepository
	locationRepo    LocationRepository
	schedule        domain.ScheduleConfig
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	jetSkiRepo JetSkiRepository,
	locationRepo LocationRepository,
	schedule domain.ScheduleConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		jetSkiRepo:      jetSkiRepo,
		locationRepo:    locationRepo,
		schedule:        schedule,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Пустой список слотов - валидный результат ("нет доступности"), не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: date=%s, duration=%d, required=%d, location=%v",
		req.Date.Format(domain.DateFormat), req.DurationMinutes, req.RequiredCount, req.LocationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		RequiredCount:   req.RequiredCount,
		Slots:           []Slot{},
	}

	// 2. Проверяем существование локации, если задан фильтр
	if req.LocationID != nil {
		if _, err := uc.locationRepo.GetByID(ctx, *req.LocationID); err != nil {
			if errors.Is(err, locationRepo.ErrLocationNotFound) {
				uc.logger.Warn("GenerateSlots: location id=%d not found", *req.LocationID)
				return nil, ErrLocationNotFound
			}
			uc.logger.Error("GenerateSlots: failed to get location id=%d: %v", *req.LocationID, err)
			return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
		}
	}

	// 3. Получаем бронируемый флот (только статус AVAILABLE)
	jetSkis, err := uc.jetSkiRepo.ListBookable(ctx, req.LocationID)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to list bookable jetskis: %v", err)
		return nil, fmt.Errorf("%w: failed to list jetskis: %v", ErrInternal, err)
	}

	// Флота заведомо не хватает - слоты можно не считать
	if len(jetSkis) < req.RequiredCount {
		uc.logger.Info("GenerateSlots: fleet of %d is smaller than required %d, no slots",
			len(jetSkis), req.RequiredCount)
		return response, nil
	}

	// 4. Получаем все незавершенные брони на дату
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Обходим рабочий день и собираем подходящие слоты
	slots, err := generateSlots(uc.schedule, req.DurationMinutes, req.RequiredCount, jetSkis, reservations)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	response.Slots = slots

	uc.logger.Info("GenerateSlots: generated %d slots for date=%s, duration=%d, required=%d",
		len(slots), req.Date.Format(domain.DateFormat), req.DurationMinutes, req.RequiredCount)

	return response, nil
}
