package get_timeslots

import (
	"github.com/bmbestetica/BMB-BookingService/internal/domain"
	"github.com/bmbestetica/BMB-BookingService/pkg/types"
)

// buildSlots размечает шаблон рабочих часов занятыми временами.
// Результат всегда содержит все слоты шаблона в его порядке
func buildSlots(takenTimes []types.TimeString) []domain.TimeSlot {
	taken := make(map[types.TimeString]struct{}, len(takenTimes))
	for _, t := range takenTimes {
		taken[t] = struct{}{}
	}

	slots := make([]domain.TimeSlot, 0, len(domain.WorkingHours))
	for _, t := range domain.WorkingHours {
		_, isTaken := taken[t]
		slots = append(slots, domain.TimeSlot{
			Time:      t,
			Available: !isTaken,
		})
	}

	return slots
}
