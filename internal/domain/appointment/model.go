package appointment

import (
	"strings"
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
)

// Status is the canonical appointment status.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

var statusAliases = map[string]Status{
	"scheduled":  StatusScheduled,
	"booked":     StatusScheduled,
	"confirmed":  StatusScheduled,
	"upcoming":   StatusScheduled,
	"pending":    StatusScheduled,
	"agendado":   StatusScheduled,
	"completed":  StatusCompleted,
	"done":       StatusCompleted,
	"fulfilled":  StatusCompleted,
	"finished":   StatusCompleted,
	"finalizado": StatusCompleted,
	"cancelled":  StatusCancelled,
	"canceled":   StatusCancelled,
	"cancelado":  StatusCancelled,
	"no_show":    StatusNoShow,
	"no-show":    StatusNoShow,
	"noshow":     StatusNoShow,
	"missed":     StatusNoShow,
	"faltou":     StatusNoShow,
}

// NormalizeStatus maps raw status strings onto the enum; unknown values
// default to scheduled.
func NormalizeStatus(raw string) Status {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusScheduled
}

// PersonSummary is the related-entity stub attached during enrichment.
type PersonSummary struct {
	ID   string
	Name string
}

// Related carries the enrichment results for one appointment.
type Related struct {
	Patient PersonSummary
	Doctor  PersonSummary
}

// Unknown-entity stubs substituted when a secondary fetch fails.
const (
	UnknownPatient = "Unknown patient"
	UnknownDoctor  = "Unknown doctor"
)

// Appointment is the canonical record for the console's appointment views.
type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientId"`
	PatientName string    `json:"patientName"`
	DoctorID    string    `json:"doctorId"`
	DoctorName  string    `json:"doctorName"`
	Date        time.Time `json:"date"`
	DateLabel   string    `json:"dateLabel"`
	TimeLabel   string    `json:"timeLabel"`
	Reason      string    `json:"reason"`
	Fee         float64   `json:"fee"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`

	Synthetic    bool           `json:"synthetic,omitempty"`
	OriginalData map[string]any `json:"_originalData,omitempty"`
}

// relatedID pulls a related-entity id that may arrive as a bare string or
// as an embedded object.
func relatedID(raw map[string]any, keys ...string) string {
	if id := rawjson.Str(raw, "", keys...); id != "" {
		return id
	}
	for _, k := range keys {
		if sub := rawjson.Map(raw, k); sub != nil {
			return rawjson.Str(sub, "", "id", "_id")
		}
	}
	return ""
}

// embeddedName pulls a related-entity name when the upstream inlines the
// whole object, avoiding a secondary fetch.
func embeddedName(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if sub := rawjson.Map(raw, k); sub != nil {
			return rawjson.DecodeName(sub, "name", "fullName", "full_name").Display("")
		}
	}
	return ""
}

// PatientID extracts the patient reference from a raw appointment.
func PatientID(raw map[string]any) string {
	return relatedID(raw, "patientId", "patient_id", "patient")
}

// DoctorID extracts the doctor reference from a raw appointment.
func DoctorID(raw map[string]any) string {
	return relatedID(raw, "doctorId", "doctor_id", "doctor")
}

// EmbeddedPatientName returns the inlined patient name, if any.
func EmbeddedPatientName(raw map[string]any) string {
	return embeddedName(raw, "patient")
}

// EmbeddedDoctorName returns the inlined doctor name, if any.
func EmbeddedDoctorName(raw map[string]any) string {
	return embeddedName(raw, "doctor")
}

// Normalize converts one raw upstream record plus its enrichment results
// into a canonical Appointment.
func Normalize(raw map[string]any, related Related) *Appointment {
	date := rawjson.Date(raw, "date", "appointmentDate", "appointment_date", "scheduledAt", "startTime", "start_time")

	dateLabel := "Not scheduled"
	timeLabel := ""
	if !date.IsZero() {
		dateLabel = date.Format("Jan 2, 2006")
		timeLabel = date.Format("3:04 PM")
	}

	patientName := related.Patient.Name
	if patientName == "" {
		patientName = UnknownPatient
	}
	doctorName := related.Doctor.Name
	if doctorName == "" {
		doctorName = UnknownDoctor
	}

	return &Appointment{
		ID:           rawjson.Str(raw, "", "id", "_id", "appointmentId", "appointment_id"),
		PatientID:    related.Patient.ID,
		PatientName:  patientName,
		DoctorID:     related.Doctor.ID,
		DoctorName:   doctorName,
		Date:         date,
		DateLabel:    dateLabel,
		TimeLabel:    timeLabel,
		Reason:       rawjson.Str(raw, rawjson.NotProvided, "reason", "complaint", "notes"),
		Fee:          rawjson.Num(raw, 0, "fee", "amount", "consultationFee"),
		Status:       NormalizeStatus(rawjson.Str(raw, "", "status", "appointmentStatus")),
		CreatedAt:    rawjson.Date(raw, "createdAt", "created_at", "bookedAt"),
		OriginalData: raw,
	}
}
