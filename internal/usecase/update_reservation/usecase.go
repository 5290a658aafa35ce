package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	locationRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/location"
	optionRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/rentaloption"
	reservationRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/reservation"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// UseCase use case изменения брони
type UseCase struct {
	reservationRepo ReservationRepository
	jetSkiRepo      JetSkiRepository
	optionRepo      RentalOptionRepository
	locationRepo    LocationRepository
	txManager       TransactionManager
	schedule        domain.ScheduleConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	jetSkiRepo JetSkiRepository,
	optionRepo RentalOptionRepository,
	locationRepo LocationRepository,
	txManager TransactionManager,
	schedule domain.ScheduleConfig,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		jetSkiRepo:      jetSkiRepo,
		optionRepo:      optionRepo,
		locationRepo:    locationRepo,
		txManager:       txManager,
		schedule:        schedule,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет изменение брони.
// При конфликт-чеке собственный интервал брони исключается из рассмотрения:
// бронь 10:00-11:00 можно передвинуть на 10:30-11:30, она не конфликтует
// сама с собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, location=%d, option=%d, date=%s, start=%s, jetskis=%v",
		req.ReservationID, req.LocationID, req.RentalOptionID,
		req.ReservationDate.Format(domain.DateFormat), req.StartTime, req.JetSkiIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем существующую бронь и проверяем, что ее еще можно менять
	existing, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if !existing.CanBeEdited() {
		uc.logger.Warn("UpdateReservation: reservation id=%d cannot be edited (running=%t, finished=%t)",
			existing.ID, existing.IsCurrentlyRunning, existing.HasFinished)
		return nil, ErrCannotBeEdited
	}

	// 3. Проверяем существование локации
	if _, err := uc.locationRepo.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			uc.logger.Warn("UpdateReservation: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// 4. Получаем опцию аренды
	option, err := uc.optionRepo.GetByID(ctx, req.RentalOptionID)
	if err != nil {
		if errors.Is(err, optionRepo.ErrOptionNotFound) {
			uc.logger.Warn("UpdateReservation: rental option id=%d not found", req.RentalOptionID)
			return nil, ErrRentalOptionNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get rental option id=%d: %v", req.RentalOptionID, err)
		return nil, fmt.Errorf("%w: failed to get rental option: %v", ErrInternal, err)
	}

	// Смена опции на скрытую запрещена; сохранение текущей опции допустимо,
	// даже если ее уже скрыли после создания брони
	if !option.IsAvailable && option.ID != existing.RentalOptionID {
		uc.logger.Warn("UpdateReservation: rental option id=%d is hidden", req.RentalOptionID)
		return nil, ErrRentalOptionUnavailable
	}

	if len(req.JetSkiIDs) < option.MinJetSkis() {
		uc.logger.Warn("UpdateReservation: option %s requires at least %d jetskis, got %d",
			option.Type, option.MinJetSkis(), len(req.JetSkiIDs))
		return nil, fmt.Errorf("%w: option type %s requires at least %d jetskis",
			ErrNotEnoughJetSkis, option.Type, option.MinJetSkis())
	}

	// 5. Интервал аренды должен целиком лежать в рабочих часах
	endTime, err := req.StartTime.AddMinutes(option.DurationMinutes)
	if err != nil {
		uc.logger.Warn("UpdateReservation: interval overflows the day: %v", err)
		return nil, fmt.Errorf("%w: interval exceeds end of day", ErrOutsideOperatingHours)
	}
	if req.StartTime.IsBefore(uc.schedule.OpeningTime) || endTime.IsAfter(uc.schedule.ClosingTime) {
		uc.logger.Warn("UpdateReservation: interval %s-%s is outside operating hours %s-%s",
			req.StartTime, endTime, uc.schedule.OpeningTime, uc.schedule.ClosingTime)
		return nil, ErrOutsideOperatingHours
	}

	// 6. Перенести бронь на прошедшее время нельзя
	if err := uc.checkNotInPast(req.ReservationDate, req.StartTime); err != nil {
		uc.logger.Warn("UpdateReservation: %v", err)
		return nil, err
	}

	// 7. Проверяем существование и статус всех гидроциклов
	jetSkis, err := uc.jetSkiRepo.GetByIDs(ctx, req.JetSkiIDs)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to get jetskis: %v", err)
		return nil, fmt.Errorf("%w: failed to get jetskis: %v", ErrInternal, err)
	}
	if len(jetSkis) != len(req.JetSkiIDs) {
		uc.logger.Warn("UpdateReservation: requested %d jetskis, found %d", len(req.JetSkiIDs), len(jetSkis))
		return nil, ErrJetSkiNotFound
	}
	for _, js := range jetSkis {
		if !js.IsBookable() {
			uc.logger.Warn("UpdateReservation: jetski id=%d has status %s", js.ID, js.Status)
			return nil, fmt.Errorf("%w: jetski %d has status %s", ErrJetSkiNotBookable, js.ID, js.Status)
		}
		if js.LocationID == nil || *js.LocationID != req.LocationID {
			uc.logger.Warn("UpdateReservation: jetski id=%d is not assigned to location %d",
				js.ID, req.LocationID)
			return nil, fmt.Errorf("%w: jetski %d belongs to another location", ErrJetSkiNotBookable, js.ID)
		}
	}

	updated := &domain.Reservation{
		ID:              existing.ID,
		Reference:       existing.Reference,
		LocationID:      req.LocationID,
		RentalOptionID:  req.RentalOptionID,
		ReservationDate: req.ReservationDate,
		StartTime:       req.StartTime,
		DurationMinutes: option.DurationMinutes,
		JetSkiIDs:       req.JetSkiIDs,
		OptionName:      option.Name,
		OwnerName:       req.OwnerName,
		OwnerPhone:      req.OwnerPhone,
		TotalPrice:      option.Price * float64(len(req.JetSkiIDs)),
	}

	// 8. Атомарно: конфликт-чек с self-exclusion + перезапись
	var saved *domain.Reservation

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		proposed := domain.Interval{Start: req.StartTime, End: endTime}

		conflicting, err := uc.findConflicts(txCtx, proposed, req.ReservationDate, req.JetSkiIDs, &existing.ID)
		if err != nil {
			return err
		}
		if len(conflicting) > 0 {
			return fmt.Errorf("%w: jetskis %v have conflicting reservations", ErrJetSkisNotAvailable, conflicting)
		}

		saved, err = uc.reservationRepo.Update(txCtx, updated)
		if err != nil {
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrJetSkisNotAvailable) {
			uc.logger.Warn("UpdateReservation: %v", txErr)
			return nil, txErr
		}
		uc.logger.Error("UpdateReservation: transaction failed: %v", txErr)
		if errors.Is(txErr, ErrInternal) {
			return nil, txErr
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, txErr)
	}

	uc.logger.Info("UpdateReservation: updated reservation id=%d, jetskis=%v, total=%.2f",
		saved.ID, saved.JetSkiIDs, saved.TotalPrice)

	return buildResponse(saved, endTime), nil
}

// findConflicts возвращает гидроциклы, у которых есть бронь, пересекающаяся
// с предлагаемым интервалом, не считая исключаемой брони
func (uc *UseCase) findConflicts(
	ctx context.Context,
	proposed domain.Interval,
	date time.Time,
	jetSkiIDs []int64,
	excludeID *int64,
) ([]int64, error) {
	conflicting := make([]int64, 0)

	for _, jetSkiID := range jetSkiIDs {
		reservations, err := uc.reservationRepo.GetByJetSkiWithFilter(ctx, domain.JetSkiReservationsFilter{
			JetSkiID:  jetSkiID,
			Date:      &date,
			ExcludeID: excludeID,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get reservations for jetski %d: %v", ErrInternal, jetSkiID, err)
		}

		for _, res := range reservations {
			existing, err := res.Interval()
			if err != nil {
				conflicting = append(conflicting, jetSkiID)
				break
			}
			if proposed.Overlaps(existing) {
				conflicting = append(conflicting, jetSkiID)
				break
			}
		}
	}

	return conflicting, nil
}

// checkNotInPast проверяет, что дата и время начала еще не прошли
func (uc *UseCase) checkNotInPast(date time.Time, start types.TimeString) error {
	now := uc.timeProvider.Now()
	today := now.Truncate(24 * time.Hour)
	reservationDay := date.Truncate(24 * time.Hour)

	if reservationDay.Before(today) {
		return fmt.Errorf("%w: date %s has passed", ErrReservationInPast, date.Format(domain.DateFormat))
	}
	if reservationDay.Equal(today) {
		nowTime := types.TimeString(now.Format(domain.TimeFormat))
		if start.IsBefore(nowTime) {
			return fmt.Errorf("%w: start time %s has passed", ErrReservationInPast, start)
		}
	}

	return nil
}

func buildResponse(res *domain.Reservation, endTime types.TimeString) *Response {
	return &Response{
		ID:              res.ID,
		Reference:       res.Reference,
		LocationID:      res.LocationID,
		RentalOptionID:  res.RentalOptionID,
		OptionName:      res.OptionName,
		ReservationDate: res.ReservationDate,
		StartTime:       res.StartTime,
		EndTime:         endTime,
		DurationMinutes: res.DurationMinutes,
		JetSkiIDs:       res.JetSkiIDs,
		OwnerName:       res.OwnerName,
		OwnerPhone:      res.OwnerPhone,
		TotalPrice:      res.TotalPrice,
		UpdatedAt:       res.UpdatedAt,
	}
}
