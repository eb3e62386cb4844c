package catalog

import (
	"context"
	"fmt"

	"github.com/bmbestetica/BMB-BookingService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List получает все услуги каталога, по возрастанию цены
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Seed наполняет каталог стартовым набором услуг через upsert.
// Повторный вызов обновляет существующие записи, дубликаты не создаются
func (s *Service) Seed(ctx context.Context) (*models.SeedResponse, error) {
	s.logger.Info("Seed: initializing catalog with %d services", len(defaultServices))

	for i := range defaultServices {
		svc := defaultServices[i]
		if err := s.serviceRepo.Upsert(ctx, &svc); err != nil {
			s.logger.Error("Seed: failed to upsert service id=%s: %v", svc.ID, err)
			return nil, fmt.Errorf("%w: Seed - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Seed: catalog initialized successfully")
	return &models.SeedResponse{
		Message: "Serviços inicializados com sucesso",
		Count:   len(defaultServices),
	}, nil
}
