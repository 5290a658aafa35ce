package reservations

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/integrations/authservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationReservationsFilter) ([]*domain.Reservation, error)
	SetRunning(ctx context.Context, id int64) error
	SetFinished(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	CheckReservationAccess(ctx context.Context, userID int64) (*authservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
