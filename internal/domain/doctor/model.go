package doctor

import (
	"strings"
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
)

// Status is the canonical verification status a console renders. Every raw
// variant the upstream has ever emitted maps onto one of these three, so
// the console's rendering switch stays exhaustive.
type Status string

const (
	StatusVerified Status = "verified"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// statusAliases covers legacy and localized raw status strings.
var statusAliases = map[string]Status{
	"verified":    StatusVerified,
	"approved":    StatusVerified,
	"active":      StatusVerified,
	"verificado":  StatusVerified,
	"aprovado":    StatusVerified,
	"pending":     StatusPending,
	"in_review":   StatusPending,
	"in-review":   StatusPending,
	"aguardando":  StatusPending,
	"pendente":    StatusPending,
	"unverified":  StatusPending,
	"rejected":    StatusRejected,
	"denied":      StatusRejected,
	"rejeitado":   StatusRejected,
	"blacklisted": StatusRejected,
}

// NormalizeStatus maps a raw status string to the canonical enum. Unknown
// strings become pending rather than leaking through.
func NormalizeStatus(raw string) Status {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusPending
}

// Doctor is the canonical record the console is guaranteed to receive:
// every field has a defined fallback and the derived fields are recomputed
// on every normalization pass.
type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DisplayName    string    `json:"displayName"`
	Initials       string    `json:"initials"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Specialization string    `json:"specialization"`
	Qualifications []string  `json:"qualifications"`
	ExperienceYrs  int       `json:"experienceYears"`
	Fee            float64   `json:"fee"`
	Rating         float64   `json:"rating"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`

	Synthetic    bool           `json:"synthetic,omitempty"`
	OriginalData map[string]any `json:"_originalData,omitempty"`
}

// Normalize converts one raw upstream record into a canonical Doctor. It
// never fails on missing fields; each one falls back to its default.
func Normalize(raw map[string]any) *Doctor {
	name := rawjson.DecodeName(raw, "name", "fullName", "full_name", "doctorName").Display(rawjson.NotProvided)

	status := StatusPending
	if s := rawjson.Str(raw, "", "status", "verificationStatus", "verification_status"); s != "" {
		status = NormalizeStatus(s)
	} else if _, ok := raw["verified"]; ok {
		if rawjson.Bool(raw, false, "verified") {
			status = StatusVerified
		}
	} else if rawjson.Bool(raw, false, "isVerified", "is_verified") {
		status = StatusVerified
	}

	spec := rawjson.Str(raw, "", "specialization", "speciality", "specialty")
	if spec == "" {
		if sub := rawjson.Map(raw, "specialization"); sub != nil {
			spec = rawjson.Str(sub, "", "name")
		}
	}
	if spec == "" {
		spec = rawjson.NotProvided
	}

	return &Doctor{
		ID:             rawjson.Str(raw, "", "id", "_id", "doctorId", "doctor_id"),
		Name:           name,
		DisplayName:    "Dr. " + name,
		Initials:       rawjson.Initials(name),
		Email:          rawjson.Str(raw, rawjson.NotProvided, "email"),
		Phone:          rawjson.Str(raw, rawjson.NotProvided, "phone", "phoneNumber", "phone_number", "mobile"),
		Specialization: spec,
		Qualifications: rawjson.StrSlice(raw, "qualifications", "degrees"),
		ExperienceYrs:  rawjson.Int(raw, 0, "experience", "experienceYears", "years_of_experience"),
		Fee:            rawjson.Num(raw, 0, "fee", "consultationFee", "consultation_fee"),
		Rating:         rawjson.Num(raw, 0, "rating", "averageRating"),
		Status:         status,
		CreatedAt:      rawjson.Date(raw, "createdAt", "created_at", "registeredAt"),
		OriginalData:   raw,
	}
}
