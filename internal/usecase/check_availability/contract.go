package check_availability

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// GetByJetSkiWithFilter получает брони, занимающие гидроцикл (кроме исключаемой)
	GetByJetSkiWithFilter(ctx context.Context, filter domain.JetSkiReservationsFilter) ([]*domain.Reservation, error)
}

// JetSkiRepository интерфейс репозитория гидроциклов
type JetSkiRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.JetSki, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
