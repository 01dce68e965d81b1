package patient

import (
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
	"github.com/caredash/caredash/internal/platform/synth"
)

const fallbackCount = 15

// GenerateFallback builds the synthetic patient collection.
func GenerateFallback(seed int64) []*Patient {
	src := synth.NewSource(seed)
	now := time.Now()

	out := make([]*Patient, 0, fallbackCount)
	for i := 0; i < fallbackCount; i++ {
		name := src.FullName()
		dob := src.DateWithin(now.AddDate(-18, 0, 0), 60*365*24*time.Hour)
		gender := "female"
		if src.Bool(0.5) {
			gender = "male"
		}
		out = append(out, &Patient{
			ID:          src.ID(),
			Name:        name,
			DisplayName: name,
			Initials:    rawjson.Initials(name),
			Email:       rawjson.NotProvided,
			Phone:       rawjson.NotProvided,
			Gender:      gender,
			DateOfBirth: dob,
			Age:         rawjson.AgeFromDOB(dob, now),
			BloodGroup:  src.Pick(synth.BloodGroups),
			Address:     src.Pick(synth.Streets),
			Status:      StatusActive,
			CreatedAt:   src.DateWithin(now, 365*24*time.Hour),
			Synthetic:   true,
		})
	}
	return out
}
