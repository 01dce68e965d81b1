package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/caredash/caredash/internal/platform/synth"
)

const fallbackCount = 18

var fallbackStatuses = []string{
	string(StatusPaid), string(StatusPaid), string(StatusPaid),
	string(StatusPending), string(StatusRefunded), string(StatusFailed),
}

var fallbackMethods = []string{"card", "cash", "insurance", "bank_transfer"}

// GenerateFallback builds the synthetic payment collection.
func GenerateFallback(seed int64) []*Payment {
	src := synth.NewSource(seed)
	now := time.Now()

	out := make([]*Payment, 0, fallbackCount)
	for i := 0; i < fallbackCount; i++ {
		id := src.ID()
		status := Status(src.Pick(fallbackStatuses))
		paidAt := time.Time{}
		if status == StatusPaid || status == StatusRefunded {
			paidAt = src.DateWithin(now, 90*24*time.Hour)
		}
		out = append(out, &Payment{
			ID:          id,
			Reference:   fmt.Sprintf("PAY-%s", strings.ToUpper(id[len(id)-8:])),
			PatientName: src.FullName(),
			DoctorName:  "Dr. " + src.FullName(),
			Amount:      src.Float(25, 400),
			Currency:    "USD",
			Method:      src.Pick(fallbackMethods),
			Status:      status,
			PaidAt:      paidAt,
			CreatedAt:   src.DateWithin(now, 90*24*time.Hour),
			Synthetic:   true,
		})
	}
	return out
}
