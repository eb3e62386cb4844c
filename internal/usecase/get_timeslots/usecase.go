package get_timeslots

import (
	"context"
	"fmt"

	"github.com/bmbestetica/BMB-BookingService/internal/domain"
)

// UseCase use case получения слотов дня
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepository BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepository,
		logger:      logger,
	}
}

// Execute возвращает все слоты шаблона рабочих часов на указанную дату
// с признаком доступности. Чистое чтение, без побочных эффектов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	takenTimes, err := uc.bookingRepo.GetActiveTimesByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get active times for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get active times: %v", ErrInternal, err)
	}

	return &Response{
		Date:  req.Date,
		Slots: buildSlots(takenTimes),
	}, nil
}
