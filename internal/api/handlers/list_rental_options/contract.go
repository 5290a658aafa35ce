package list_rental_options

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/options/models"
)

type OptionsService interface {
	List(ctx context.Context, onlyAvailable bool) (*models.RentalOptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
