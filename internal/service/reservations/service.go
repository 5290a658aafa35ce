package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/integrations/authservice"
	reservationRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/reservation"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/reservations/models"
)

// Service сервис для работы с бронями
type Service struct {
	reservationRepo ReservationRepository
	authClient      AuthServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	authClient AuthServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		authClient:      authClient,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(res), nil
}

// GetByLocation получает брони локации с фильтрацией по дате и гидроциклу.
// По умолчанию завершенные аренды не возвращаются.
func (s *Service) GetByLocation(ctx context.Context, req *models.GetLocationReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := fmt.Sprintf("GetByLocation: fetching reservations for location=%d", req.LocationID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.JetSkiID != nil {
		logMsg += fmt.Sprintf(", jetski=%d", *req.JetSkiID)
	}
	if req.IncludeFinished {
		logMsg += ", includeFinished=true"
	}
	s.logger.Info(logMsg)

	if req.LocationID <= 0 {
		s.logger.Warn("GetByLocation: invalid location id=%d", req.LocationID)
		return nil, fmt.Errorf("%w: locationId must be positive", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByLocationWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetByLocation: repository error for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: GetByLocation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByLocation: successfully fetched %d reservations for location=%d",
		len(reservations), req.LocationID)
	return models.FromDomainReservationList(reservations), nil
}

// Delete удаляет бронь. Идущую аренду удалить нельзя - сначала Finish.
// Доступно только персоналу (проверка через AuthService).
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", id, userID)

	if err := s.checkAccess(ctx, "Delete", userID); err != nil {
		return err
	}

	res, err := s.getReservation(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if !res.CanBeDeleted() {
		s.logger.Warn("Delete: reservation id=%d is currently running", id)
		return ErrCannotDelete
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found during deletion", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// Start отмечает начало аренды (клиент забрал гидроциклы).
// Доступно только персоналу.
func (s *Service) Start(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("Start: starting reservation id=%d by user=%d", id, userID)

	if err := s.checkAccess(ctx, "Start", userID); err != nil {
		return nil, err
	}

	res, err := s.getReservation(ctx, "Start", id)
	if err != nil {
		return nil, err
	}

	if !res.CanBeStarted() {
		s.logger.Warn("Start: reservation id=%d cannot be started (running=%t, finished=%t)",
			id, res.IsCurrentlyRunning, res.HasFinished)
		return nil, ErrCannotStart
	}

	if err := s.reservationRepo.SetRunning(ctx, id); err != nil {
		s.logger.Error("Start: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}

	res.IsCurrentlyRunning = true

	s.logger.Info("Start: successfully started reservation id=%d", id)
	return models.FromDomainReservation(res), nil
}

// Finish отмечает завершение аренды (гидроциклы вернулись).
// Доступно только персоналу.
func (s *Service) Finish(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("Finish: finishing reservation id=%d by user=%d", id, userID)

	if err := s.checkAccess(ctx, "Finish", userID); err != nil {
		return nil, err
	}

	res, err := s.getReservation(ctx, "Finish", id)
	if err != nil {
		return nil, err
	}

	if !res.CanBeFinished() {
		s.logger.Warn("Finish: reservation id=%d cannot be finished (running=%t, finished=%t)",
			id, res.IsCurrentlyRunning, res.HasFinished)
		return nil, ErrCannotFinish
	}

	if err := s.reservationRepo.SetFinished(ctx, id); err != nil {
		s.logger.Error("Finish: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Finish - repository error: %v", ErrInternal, err)
	}

	res.IsCurrentlyRunning = false
	res.HasFinished = true

	s.logger.Info("Finish: successfully finished reservation id=%d", id)
	return models.FromDomainReservation(res), nil
}

// Вспомогательные методы

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}

// checkAccess проверяет через AuthService, что пользователь может управлять бронями
func (s *Service) checkAccess(ctx context.Context, op string, userID int64) error {
	if userID <= 0 {
		s.logger.Warn("%s: missing user id", op)
		return ErrAccessDenied
	}

	if _, err := s.authClient.CheckReservationAccess(ctx, userID); err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) || errors.Is(err, authservice.ErrAccessDenied) {
			s.logger.Warn("%s: access denied for user=%d", op, userID)
			return ErrAccessDenied
		}
		s.logger.Error("%s: auth check failed for user=%d: %v", op, userID, err)
		return fmt.Errorf("%w: %s - auth check failed: %v", ErrInternal, op, err)
	}

	return nil
}
