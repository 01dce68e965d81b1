package user

import (
	"strings"
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
	"github.com/caredash/caredash/internal/platform/synth"
)

const fallbackCount = 10

var fallbackRoles = []string{
	string(RoleAdmin), string(RoleDoctor), string(RoleDoctor),
	string(RolePatient), string(RolePatient), string(RoleStaff),
}

// GenerateFallback builds the synthetic user collection.
func GenerateFallback(seed int64) []*User {
	src := synth.NewSource(seed)
	now := time.Now()

	out := make([]*User, 0, fallbackCount)
	for i := 0; i < fallbackCount; i++ {
		name := src.FullName()
		email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.org"
		out = append(out, &User{
			ID:          src.ID(),
			Name:        name,
			DisplayName: name,
			Initials:    rawjson.Initials(name),
			Email:       email,
			Role:        Role(src.Pick(fallbackRoles)),
			Status:      StatusActive,
			LastLoginAt: src.DateWithin(now, 14*24*time.Hour),
			CreatedAt:   src.DateWithin(now, 365*24*time.Hour),
			Synthetic:   true,
		})
	}
	return out
}
