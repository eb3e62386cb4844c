package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/bmbestetica/BMB-BookingService/internal/domain"
	bookingRepo "github.com/bmbestetica/BMB-BookingService/internal/infra/storage/booking"
	serviceRepo "github.com/bmbestetica/BMB-BookingService/internal/infra/storage/service"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	dispatcher   NotificationDispatcher
	timeProvider TimeProvider
	idGenerator  IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	serviceRepository ServiceRepository,
	txManager TransactionManager,
	dispatcher NotificationDispatcher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		serviceRepo:  serviceRepository,
		txManager:    txManager,
		dispatcher:   dispatcher,
		timeProvider: &RealTimeProvider{},
		idGenerator:  &UUIDGenerator{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Эксклюзивность слота обеспечивается сериализуемой транзакцией вокруг
// проверки конфликта и вставки; уникальный индекс uniq_active_slot в БД
// закрывает гонку окончательно. Уведомления отправляются после коммита
// и не влияют на результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Проверка конфликта и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем времена активных бронирований на дату с блокировкой (FOR UPDATE)
		takenTimes, err := uc.bookingRepo.GetActiveTimesByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get active times: %v", err)
			return fmt.Errorf("%w: failed to get active times: %v", ErrInternal, err)
		}

		// 3.2. Проверяем доступность слота
		for _, taken := range takenTimes {
			if taken == req.Time {
				uc.logger.Warn("CreateBooking: slot %s %s already taken",
					req.Date.Format(domain.DateFormat), req.Time)
				return ErrSlotNotAvailable
			}
		}

		// 3.3. Создаем бронирование со снимком названия услуги
		booking := &domain.Booking{
			ID:            uc.idGenerator.NewID(),
			ServiceID:     service.ID,
			ServiceName:   service.Name,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			VehicleModel:  req.VehicleModel,
			VehiclePlate:  req.VehiclePlate,
			Date:          req.Date,
			Time:          req.Time,
			Status:        domain.StatusPending,
			CreatedAt:     uc.timeProvider.Now().UTC(),
		}

		// 3.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	// 4. Ставим уведомления в очередь после коммита
	uc.dispatcher.BookingCreated(result)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		ServiceID:     result.ServiceID,
		ServiceName:   result.ServiceName,
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		CustomerEmail: result.CustomerEmail,
		VehicleModel:  result.VehicleModel,
		VehiclePlate:  result.VehiclePlate,
		Date:          result.Date,
		Time:          result.Time,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
