package availability

import (
	"github.com/caredash/caredash/internal/platform/synth"
)

// GenerateFallback builds a synthetic weekday schedule: one entry per
// working day, mornings off on Saturday, closed Sunday.
func GenerateFallback(seed int64) []*Availability {
	src := synth.NewSource(seed)
	doctorID := src.ID()

	out := make([]*Availability, 0, len(Weekdays))
	for _, day := range Weekdays {
		status := StatusAvailable
		start, end := "09:00", "17:00"
		switch day {
		case "saturday":
			start, end = "09:00", "12:00"
		case "sunday":
			status = StatusUnavailable
			start, end = "", ""
		}
		out = append(out, &Availability{
			ID:          src.ID(),
			DoctorID:    doctorID,
			Day:         day,
			Start:       start,
			End:         end,
			SlotMinutes: 15 * src.IntBetween(1, 2),
			Status:      status,
			Synthetic:   true,
		})
	}
	return out
}
