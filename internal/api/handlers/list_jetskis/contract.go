package list_jetskis

import (
	"context"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/fleet/models"
)

type FleetService interface {
	ListJetSkis(ctx context.Context, req *models.ListJetSkisRequest) (*models.JetSkiListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
