package domain

import "github.com/bmbestetica/BMB-BookingService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// WorkingHours фиксированный дневной шаблон слотов
// Одинаков для любой даты: почасовые слоты с перерывом на обед (12:00)
// Определяется один раз при старте и никогда не изменяется
var WorkingHours = []types.TimeString{
	"08:00", "09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// ActiveStatuses статусы, занимающие слот
// Используются при проверке доступности и в conflict check
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
