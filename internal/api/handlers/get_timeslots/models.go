package get_timeslots

import (
	getTimeslots "github.com/bmbestetica/BMB-BookingService/internal/usecase/get_timeslots"
)

// TimeSlotResponse HTTP модель слота
type TimeSlotResponse struct {
	Time      string `json:"time"` // "10:00"
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeslots.Response) []TimeSlotResponse {
	slots := make([]TimeSlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, TimeSlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
		})
	}
	return slots
}
