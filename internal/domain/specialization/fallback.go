package specialization

import (
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
	"github.com/caredash/caredash/internal/platform/synth"
)

// GenerateFallback builds the synthetic specialization collection, one
// record per specialty in the shared pool.
func GenerateFallback(seed int64) []*Specialization {
	src := synth.NewSource(seed)
	now := time.Now()

	out := make([]*Specialization, 0, len(synth.Specialties))
	for _, name := range synth.Specialties {
		out = append(out, &Specialization{
			ID:          src.ID(),
			Name:        name,
			Description: rawjson.NotProvided,
			DoctorCount: src.IntBetween(1, 25),
			Status:      StatusActive,
			CreatedAt:   src.DateWithin(now, 2*365*24*time.Hour),
			Synthetic:   true,
		})
	}
	return out
}
