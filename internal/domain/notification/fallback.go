package notification

import (
	"time"

	"github.com/caredash/caredash/internal/platform/synth"
)

const fallbackCount = 8

var fallbackTitles = map[Kind][]string{
	KindAppointment: {"New appointment booked", "Appointment cancelled", "Appointment rescheduled"},
	KindPayment:     {"Payment received", "Refund issued", "Payment failed"},
	KindSystem:      {"Scheduled maintenance", "New doctor registration", "Weekly report ready"},
}

// GenerateFallback builds the synthetic notification feed.
func GenerateFallback(seed int64) []*Notification {
	src := synth.NewSource(seed)
	now := time.Now()
	kinds := []string{string(KindAppointment), string(KindPayment), string(KindSystem)}

	out := make([]*Notification, 0, fallbackCount)
	for i := 0; i < fallbackCount; i++ {
		kind := Kind(src.Pick(kinds))
		created := src.DateWithin(now, 7*24*time.Hour)
		out = append(out, &Notification{
			ID:        src.ID(),
			Kind:      kind,
			Title:     src.Pick(fallbackTitles[kind]),
			Message:   "Generated while the notification service is unreachable.",
			Read:      src.Bool(0.5),
			CreatedAt: created,
			AgeLabel:  ageLabel(created, now),
			Synthetic: true,
		})
	}
	return out
}
