package doctor

import (
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
	"github.com/caredash/caredash/internal/platform/synth"
)

const fallbackCount = 12

// GenerateFallback builds the synthetic doctor collection served when the
// doctors endpoint is unreachable. The shape is deterministic and the
// values are pseudo-random from the seed; each record is marked Synthetic
// and carries no original raw data.
func GenerateFallback(seed int64) []*Doctor {
	src := synth.NewSource(seed)
	now := time.Now()

	out := make([]*Doctor, 0, fallbackCount)
	for i := 0; i < fallbackCount; i++ {
		name := src.FullName()
		status := StatusVerified
		if src.Bool(0.3) {
			status = StatusPending
		}
		out = append(out, &Doctor{
			ID:             src.ID(),
			Name:           name,
			DisplayName:    "Dr. " + name,
			Initials:       rawjson.Initials(name),
			Email:          rawjson.NotProvided,
			Phone:          rawjson.NotProvided,
			Specialization: src.Pick(synth.Specialties),
			Qualifications: []string{"MBBS"},
			ExperienceYrs:  src.IntBetween(1, 30),
			Fee:            src.Float(40, 220),
			Rating:         src.Float(3, 5),
			Status:         status,
			CreatedAt:      src.DateWithin(now, 365*24*time.Hour),
			Synthetic:      true,
		})
	}
	return out
}
