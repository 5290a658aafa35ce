package set_option_availability

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/options/models"
)

type OptionsService interface {
	SetAvailability(ctx context.Context, id int64, req *models.SetAvailabilityRequest) (*models.RentalOptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
