package options

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/integrations/authservice"
)

// RentalOptionRepository интерфейс репозитория опций аренды
type RentalOptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RentalOption, error)
	List(ctx context.Context, onlyAvailable bool) ([]*domain.RentalOption, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	CheckFleetAccess(ctx context.Context, userID int64) (*authservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
