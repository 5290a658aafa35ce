package list_locations

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/fleet/models"
)

type FleetService interface {
	ListLocations(ctx context.Context) (*models.LocationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
