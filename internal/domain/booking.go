package domain

import (
	"time"

	"github.com/bmbestetica/BMB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer appointment in the system
type Booking struct {
	ID        string
	ServiceID string

	// Denormalized service name, captured at creation time so history
	// stays readable after catalog changes
	ServiceName string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	VehicleModel string
	VehiclePlate string

	Date   time.Time
	Time   types.TimeString
	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward slot exclusivity
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Status *BookingStatus // Фильтр по статусу (опционально)
}
