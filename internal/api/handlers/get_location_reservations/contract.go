package get_location_reservations

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/reservations/models"
)

type ReservationService interface {
	GetByLocation(ctx context.Context, req *models.GetLocationReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
