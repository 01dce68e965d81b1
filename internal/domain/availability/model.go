package availability

import (
	"strings"

	"github.com/caredash/caredash/internal/platform/rawjson"
)

// Status is the canonical slot status.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusBreak       Status = "break"
)

var statusAliases = map[string]Status{
	"available":    StatusAvailable,
	"open":         StatusAvailable,
	"free":         StatusAvailable,
	"disponivel":   StatusAvailable,
	"unavailable":  StatusUnavailable,
	"closed":       StatusUnavailable,
	"busy":         StatusUnavailable,
	"off":          StatusUnavailable,
	"indisponivel": StatusUnavailable,
	"break":        StatusBreak,
	"lunch":        StatusBreak,
	"pausa":        StatusBreak,
}

func NormalizeStatus(raw string) Status {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusUnavailable
}

// Canonical weekday names, Monday first to match the console's schedule grid.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var dayAliases = map[string]string{
	"mon": "monday", "monday": "monday", "segunda": "monday",
	"tue": "tuesday", "tues": "tuesday", "tuesday": "tuesday", "terca": "tuesday",
	"wed": "wednesday", "wednesday": "wednesday", "quarta": "wednesday",
	"thu": "thursday", "thur": "thursday", "thurs": "thursday", "thursday": "thursday", "quinta": "thursday",
	"fri": "friday", "friday": "friday", "sexta": "friday",
	"sat": "saturday", "saturday": "saturday", "sabado": "saturday",
	"sun": "sunday", "sunday": "sunday", "domingo": "sunday",
}

// NormalizeDay maps raw weekday spellings onto the canonical names. Unknown
// values map to monday so the schedule grid always has a column to land in.
func NormalizeDay(raw string) string {
	if d, ok := dayAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return d
	}
	return "monday"
}

// Availability is one canonical weekly-schedule entry for a doctor.
type Availability struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId"`
	Day         string `json:"day"`
	Start       string `json:"start"`
	End         string `json:"end"`
	SlotMinutes int    `json:"slotMinutes"`
	Status      Status `json:"status"`

	Synthetic    bool           `json:"synthetic,omitempty"`
	OriginalData map[string]any `json:"_originalData,omitempty"`
}

// Normalize converts one raw upstream record into a canonical Availability.
func Normalize(raw map[string]any) *Availability {
	return &Availability{
		ID:           rawjson.Str(raw, "", "id", "_id", "availabilityId"),
		DoctorID:     rawjson.Str(raw, "", "doctorId", "doctor_id"),
		Day:          NormalizeDay(rawjson.Str(raw, "", "day", "weekday", "dayOfWeek", "day_of_week")),
		Start:        rawjson.Str(raw, "09:00", "start", "startTime", "start_time", "from"),
		End:          rawjson.Str(raw, "17:00", "end", "endTime", "end_time", "to"),
		SlotMinutes:  rawjson.Int(raw, 30, "slotMinutes", "slot_minutes", "slotDuration"),
		Status:       NormalizeStatus(rawjson.Str(raw, "", "status")),
		OriginalData: raw,
	}
}
