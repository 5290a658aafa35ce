package update_jetski_status

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/fleet/models"
)

type FleetService interface {
	UpdateJetSkiStatus(ctx context.Context, id int64, req *models.UpdateJetSkiStatusRequest) (*models.JetSkiResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
