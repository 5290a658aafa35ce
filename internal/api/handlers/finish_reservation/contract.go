package finish_reservation

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/reservations/models"
)

type ReservationService interface {
	Finish(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
