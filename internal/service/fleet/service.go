package fleet

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/integrations/authservice"
	jetskiRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/jetski"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/fleet/models"
)

// Service сервис для работы с флотом и локациями
type Service struct {
	jetSkiRepo   JetSkiRepository
	locationRepo LocationRepository
	authClient   AuthServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса флота
func NewService(
	jetSkiRepo JetSkiRepository,
	locationRepo LocationRepository,
	authClient AuthServiceClient,
	logger Logger,
) *Service {
	return &Service{
		jetSkiRepo:   jetSkiRepo,
		locationRepo: locationRepo,
		authClient:   authClient,
		logger:       logger,
	}
}

// ListJetSkis получает список гидроциклов с фильтрацией по локации и статусу
func (s *Service) ListJetSkis(ctx context.Context, req *models.ListJetSkisRequest) (*models.JetSkiListResponse, error) {
	s.logger.Info("ListJetSkis: location=%v, status=%v", req.LocationID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListJetSkis: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	jetSkis, err := s.jetSkiRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListJetSkis: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListJetSkis - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListJetSkis: successfully fetched %d jetskis", len(jetSkis))
	return models.FromDomainJetSkiList(jetSkis), nil
}

// UpdateJetSkiStatus меняет операционный статус гидроцикла.
// Существующие брони при этом не трогаются: статус влияет только на
// новые брони и подсчет слотов. Доступно только менеджерам.
func (s *Service) UpdateJetSkiStatus(ctx context.Context, id int64, req *models.UpdateJetSkiStatusRequest) (*models.JetSkiResponse, error) {
	s.logger.Info("UpdateJetSkiStatus: jetski id=%d, status=%s, user=%d", id, req.Status, req.UserID)

	if err := s.checkAccess(ctx, "UpdateJetSkiStatus", req.UserID); err != nil {
		return nil, err
	}

	status := domain.JetSkiStatus(req.Status)
	if !domain.ValidJetSkiStatus(status) {
		s.logger.Warn("UpdateJetSkiStatus: invalid status=%s for jetski id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status %s", ErrInvalidInput, req.Status)
	}

	js, err := s.jetSkiRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, jetskiRepo.ErrJetSkiNotFound) {
			s.logger.Warn("UpdateJetSkiStatus: jetski id=%d not found", id)
			return nil, ErrJetSkiNotFound
		}
		s.logger.Error("UpdateJetSkiStatus: repository error for jetski id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateJetSkiStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.jetSkiRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, jetskiRepo.ErrJetSkiNotFound) {
			s.logger.Warn("UpdateJetSkiStatus: jetski id=%d not found during update", id)
			return nil, ErrJetSkiNotFound
		}
		s.logger.Error("UpdateJetSkiStatus: repository error for jetski id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateJetSkiStatus - repository error: %v", ErrInternal, err)
	}

	js.Status = status

	s.logger.Info("UpdateJetSkiStatus: successfully updated jetski id=%d to status=%s", id, status)
	return models.FromDomainJetSki(js), nil
}

// ListLocations получает список всех локаций
func (s *Service) ListLocations(ctx context.Context) (*models.LocationListResponse, error) {
	s.logger.Info("ListLocations: fetching locations")

	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListLocations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLocations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListLocations: successfully fetched %d locations", len(locations))
	return models.FromDomainLocationList(locations), nil
}

// checkAccess проверяет через AuthService, что пользователь может управлять флотом
func (s *Service) checkAccess(ctx context.Context, op string, userID int64) error {
	if userID <= 0 {
		s.logger.Warn("%s: missing user id", op)
		return ErrAccessDenied
	}

	if _, err := s.authClient.CheckFleetAccess(ctx, userID); err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) || errors.Is(err, authservice.ErrAccessDenied) {
			s.logger.Warn("%s: access denied for user=%d", op, userID)
			return ErrAccessDenied
		}
		s.logger.Error("%s: auth check failed for user=%d: %v", op, userID, err)
		return fmt.Errorf("%w: %s - auth check failed: %v", ErrInternal, op, err)
	}

	return nil
}
