package generate_slots

import (
	"context"
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// GetByDate получает все незавершенные брони на дату (со списками гидроциклов)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// JetSkiRepository интерфейс репозитория гидроциклов
type JetSkiRepository interface {
	// ListBookable получает гидроциклы со статусом AVAILABLE, опционально по локации
	ListBookable(ctx context.Context, locationID *int64) ([]*domain.JetSki, error)
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
