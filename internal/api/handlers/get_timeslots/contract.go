package get_timeslots

import (
	"context"

	getTimeslots "github.com/bmbestetica/BMB-BookingService/internal/usecase/get_timeslots"
)

type GetTimeSlotsUseCase interface {
	Execute(ctx context.Context, req *getTimeslots.Request) (*getTimeslots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
