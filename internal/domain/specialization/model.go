package specialization

import (
	"strings"
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
)

// Status is the canonical specialization status.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

var statusAliases = map[string]Status{
	"active":     StatusActive,
	"enabled":    StatusActive,
	"ativo":      StatusActive,
	"archived":   StatusArchived,
	"inactive":   StatusArchived,
	"deprecated": StatusArchived,
	"arquivado":  StatusArchived,
}

func NormalizeStatus(raw string) Status {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusActive
}

// Specialization is the canonical medical-specialty record.
type Specialization struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DoctorCount int       `json:"doctorCount"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`

	Synthetic    bool           `json:"synthetic,omitempty"`
	OriginalData map[string]any `json:"_originalData,omitempty"`
}

// Normalize converts one raw upstream record into a canonical
// Specialization.
func Normalize(raw map[string]any) *Specialization {
	return &Specialization{
		ID:           rawjson.Str(raw, "", "id", "_id", "specializationId"),
		Name:         rawjson.Str(raw, rawjson.NotProvided, "name", "title", "specialization"),
		Description:  rawjson.Str(raw, rawjson.NotProvided, "description", "details"),
		DoctorCount:  rawjson.Int(raw, 0, "doctorCount", "doctor_count", "doctors"),
		Status:       NormalizeStatus(rawjson.Str(raw, "", "status")),
		CreatedAt:    rawjson.Date(raw, "createdAt", "created_at"),
		OriginalData: raw,
	}
}
