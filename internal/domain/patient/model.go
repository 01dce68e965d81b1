package patient

import (
	"strings"
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
)

// Status is the canonical patient account status.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

var statusAliases = map[string]Status{
	"active":    StatusActive,
	"enabled":   StatusActive,
	"ativo":     StatusActive,
	"inactive":  StatusInactive,
	"disabled":  StatusInactive,
	"inativo":   StatusInactive,
	"dormant":   StatusInactive,
	"blocked":   StatusBlocked,
	"banned":    StatusBlocked,
	"bloqueado": StatusBlocked,
	"suspended": StatusBlocked,
}

// NormalizeStatus maps raw status strings onto the enum; unknown values
// default to active.
func NormalizeStatus(raw string) Status {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusActive
}

var genderAliases = map[string]string{
	"m": "male", "male": "male", "masculino": "male",
	"f": "female", "female": "female", "feminino": "female",
	"o": "other", "other": "other", "outro": "other",
}

// Patient is the canonical record for the console's patient views. Age is
// derived from the date of birth on every normalization pass.
type Patient struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	Initials    string    `json:"initials"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Gender      string    `json:"gender"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Age         int       `json:"age"`
	BloodGroup  string    `json:"bloodGroup"`
	Address     string    `json:"address"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`

	Synthetic    bool           `json:"synthetic,omitempty"`
	OriginalData map[string]any `json:"_originalData,omitempty"`
}

// Normalize converts one raw upstream record into a canonical Patient.
func Normalize(raw map[string]any) *Patient {
	name := rawjson.DecodeName(raw, "name", "fullName", "full_name", "patientName").Display(rawjson.NotProvided)

	gender := strings.ToLower(rawjson.Str(raw, "", "gender", "sex"))
	if g, ok := genderAliases[gender]; ok {
		gender = g
	} else {
		gender = rawjson.NotProvided
	}

	dob := rawjson.Date(raw, "dateOfBirth", "date_of_birth", "dob", "birthDate")

	address := rawjson.Str(raw, "", "address")
	if address == "" {
		if sub := rawjson.Map(raw, "address"); sub != nil {
			parts := []string{}
			for _, k := range []string{"street", "line1", "city", "state", "zip", "postalCode"} {
				if p := rawjson.Str(sub, "", k); p != "" {
					parts = append(parts, p)
				}
			}
			address = strings.Join(parts, ", ")
		}
	}
	if address == "" {
		address = rawjson.NotProvided
	}

	return &Patient{
		ID:           rawjson.Str(raw, "", "id", "_id", "patientId", "patient_id"),
		Name:         name,
		DisplayName:  name,
		Initials:     rawjson.Initials(name),
		Email:        rawjson.Str(raw, rawjson.NotProvided, "email"),
		Phone:        rawjson.Str(raw, rawjson.NotProvided, "phone", "phoneNumber", "phone_number", "mobile"),
		Gender:       gender,
		DateOfBirth:  dob,
		Age:          rawjson.AgeFromDOB(dob, time.Now()),
		BloodGroup:   rawjson.Str(raw, rawjson.NotProvided, "bloodGroup", "blood_group", "bloodType"),
		Address:      address,
		Status:       NormalizeStatus(rawjson.Str(raw, "", "status", "accountStatus")),
		CreatedAt:    rawjson.Date(raw, "createdAt", "created_at", "registeredAt"),
		OriginalData: raw,
	}
}
