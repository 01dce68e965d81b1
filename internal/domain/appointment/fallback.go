package appointment

import (
	"time"

	"github.com/caredash/caredash/internal/platform/synth"
)

const fallbackCount = 20

var fallbackStatuses = []string{
	string(StatusScheduled), string(StatusScheduled), string(StatusCompleted),
	string(StatusCompleted), string(StatusCancelled), string(StatusNoShow),
}

// GenerateFallback builds the synthetic appointment collection.
func GenerateFallback(seed int64) []*Appointment {
	src := synth.NewSource(seed)
	now := time.Now()

	out := make([]*Appointment, 0, fallbackCount)
	for i := 0; i < fallbackCount; i++ {
		date := src.DateWithin(now.Add(14*24*time.Hour), 45*24*time.Hour)
		out = append(out, &Appointment{
			ID:          src.ID(),
			PatientID:   src.ID(),
			PatientName: src.FullName(),
			DoctorID:    src.ID(),
			DoctorName:  "Dr. " + src.FullName(),
			Date:        date,
			DateLabel:   date.Format("Jan 2, 2006"),
			TimeLabel:   date.Format("3:04 PM"),
			Reason:      src.Pick([]string{"Consultation", "Follow-up", "Check-up", "Lab review"}),
			Fee:         src.Float(40, 200),
			Status:      Status(src.Pick(fallbackStatuses)),
			CreatedAt:   src.DateWithin(now, 60*24*time.Hour),
			Synthetic:   true,
		})
	}
	return out
}
