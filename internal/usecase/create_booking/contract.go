package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bmbestetica/BMB-BookingService/internal/domain"
	"github.com/bmbestetica/BMB-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveTimesByDate(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationDispatcher интерфейс диспетчера уведомлений
// Вызывается после коммита транзакции; ошибки отправки не влияют на результат
type NotificationDispatcher interface {
	BookingCreated(booking *domain.Booking)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator интерфейс для генерации идентификаторов бронирований
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генератор идентификаторов на основе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый уникальный идентификатор
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
