package init_services

import (
	"context"

	"github.com/bmbestetica/BMB-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	Seed(ctx context.Context) (*models.SeedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
