package get_timeslots

import (
	"time"

	"github.com/bmbestetica/BMB-BookingService/internal/domain"
)

// Request модель запроса доступных слотов
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	Date  time.Time         // Запрошенная дата
	Slots []domain.TimeSlot // Слоты в порядке шаблона рабочих часов
}
