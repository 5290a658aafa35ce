package fleet

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/integrations/authservice"
)

// JetSkiRepository интерфейс репозитория гидроциклов
type JetSkiRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.JetSki, error)
	List(ctx context.Context, filter domain.JetSkiFilter) ([]*domain.JetSki, error)
	UpdateStatus(ctx context.Context, id int64, status domain.JetSkiStatus) error
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	List(ctx context.Context) ([]*domain.Location, error)
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
