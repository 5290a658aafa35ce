package update_reservation

import (
	"context"
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	// GetByJetSkiWithFilter получает брони, занимающие гидроцикл (кроме исключаемой)
	GetByJetSkiWithFilter(ctx context.Context, filter domain.JetSkiReservationsFilter) ([]*domain.Reservation, error)
}

// JetSkiRepository интерфейс репозитория гидроциклов
type JetSkiRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.JetSki, error)
}

// RentalOptionRepository интерфейс репозитория опций аренды
type RentalOptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RentalOption, error)
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider источник текущего времени (подменяется в тестах)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
