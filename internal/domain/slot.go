package domain

import "github.com/bmbestetica/BMB-BookingService/pkg/types"

// TimeSlot represents one entry of the daily template with its availability
// Derived per request, never persisted
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}
