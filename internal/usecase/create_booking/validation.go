package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
// Принадлежность времени шаблону рабочих часов намеренно не проверяется:
// слот вне шаблона никогда не показывается свободным, но его бронирование
// не запрещено
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleModel) == "" {
		return fmt.Errorf("%w: vehicleModel is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehiclePlate) == "" {
		return fmt.Errorf("%w: vehiclePlate is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время слота указано
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}
