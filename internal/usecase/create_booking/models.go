package create_booking

import (
	"time"

	"github.com/bmbestetica/BMB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     string           // Слаг услуги из каталога
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента
	CustomerEmail string           // Email клиента
	VehicleModel  string           // Модель автомобиля
	VehiclePlate  string           // Госномер
	Date          time.Time        // Дата бронирования (без времени)
	Time          types.TimeString // Время слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string           // ID созданного бронирования
	ServiceID     string           // Слаг услуги
	ServiceName   string           // Название услуги (снимок на момент создания)
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента
	CustomerEmail string           // Email клиента
	VehicleModel  string           // Модель автомобиля
	VehiclePlate  string           // Госномер
	Date          time.Time        // Дата бронирования
	Time          types.TimeString // Время слота
	Status        string           // Статус бронирования (всегда pending)
	CreatedAt     time.Time        // Время создания
	UpdatedAt     time.Time        // Время обновления
}
