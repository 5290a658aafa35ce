package options

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/integrations/authservice"
	optionRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/rentaloption"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/options/models"
)

// Service сервис для работы с опциями аренды
type Service struct {
	optionRepo RentalOptionRepository
	authClient AuthServiceClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса опций
func NewService(
	optionRepo RentalOptionRepository,
	authClient AuthServiceClient,
	logger Logger,
) *Service {
	return &Service{
		optionRepo: optionRepo,
		authClient: authClient,
		logger:     logger,
	}
}

// List получает список опций аренды.
// Публичный эндпоинт отдает только видимые опции; персонал может
// запросить и скрытые (onlyAvailable=false).
func (s *Service) List(ctx context.Context, onlyAvailable bool) (*models.RentalOptionListResponse, error) {
	s.logger.Info("List: fetching rental options, onlyAvailable=%t", onlyAvailable)

	opts, err := s.optionRepo.List(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rental options", len(opts))
	return models.FromDomainRentalOptionList(opts), nil
}

// SetAvailability скрывает или восстанавливает опцию аренды (soft delete).
// Скрытая опция не предлагается для новых броней; существующие брони
// сохраняют ее название и цену. Доступно только менеджерам.
func (s *Service) SetAvailability(ctx context.Context, id int64, req *models.SetAvailabilityRequest) (*models.RentalOptionResponse, error) {
	s.logger.Info("SetAvailability: option id=%d, available=%t, user=%d", id, req.IsAvailable, req.UserID)

	if err := s.checkAccess(ctx, "SetAvailability", req.UserID); err != nil {
		return nil, err
	}

	opt, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, optionRepo.ErrOptionNotFound) {
			s.logger.Warn("SetAvailability: option id=%d not found", id)
			return nil, ErrOptionNotFound
		}
		s.logger.Error("SetAvailability: repository error for option id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	if err := s.optionRepo.SetAvailability(ctx, id, req.IsAvailable); err != nil {
		if errors.Is(err, optionRepo.ErrOptionNotFound) {
			s.logger.Warn("SetAvailability: option id=%d not found during update", id)
			return nil, ErrOptionNotFound
		}
		s.logger.Error("SetAvailability: repository error for option id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	opt.IsAvailable = req.IsAvailable

	s.logger.Info("SetAvailability: successfully set option id=%d available=%t", id, req.IsAvailable)
	return models.FromDomainRentalOption(opt), nil
}

// checkAccess проверяет через AuthService, что пользователь может управлять опциями
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
