package create_booking

import (
	"time"

	"github.com/bmbestetica/BMB-BookingService/internal/domain"
	createBooking "github.com/bmbestetica/BMB-BookingService/internal/usecase/create_booking"
	"github.com/bmbestetica/BMB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     string `json:"service_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	VehicleModel  string `json:"vehicle_model"`
	VehiclePlate  string `json:"vehicle_plate"`
	Date          string `json:"date"` // "2025-06-10"
	Time          string `json:"time"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string `json:"id"`
	ServiceID     string `json:"service_id"`
	ServiceName   string `json:"service_name"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	VehicleModel  string `json:"vehicle_model"`
	VehiclePlate  string `json:"vehicle_plate"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время слота
	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		VehicleModel:  r.VehicleModel,
		VehiclePlate:  r.VehiclePlate,
		Date:          date,
		Time:          slotTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		CustomerEmail: resp.CustomerEmail,
		VehicleModel:  resp.VehicleModel,
		VehiclePlate:  resp.VehiclePlate,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time.String(),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
