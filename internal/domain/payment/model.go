package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
)

// Status is the canonical payment status.
type Status string

const (
	StatusPaid     Status = "paid"
	StatusPending  Status = "pending"
	StatusRefunded Status = "refunded"
	StatusFailed   Status = "failed"
)

var statusAliases = map[string]Status{
	"paid":       StatusPaid,
	"success":    StatusPaid,
	"succeeded":  StatusPaid,
	"completed":  StatusPaid,
	"pago":       StatusPaid,
	"pending":    StatusPending,
	"processing": StatusPending,
	"created":    StatusPending,
	"pendente":   StatusPending,
	"refunded":   StatusRefunded,
	"reversed":   StatusRefunded,
	"estornado":  StatusRefunded,
	"failed":     StatusFailed,
	"declined":   StatusFailed,
	"error":      StatusFailed,
	"falhou":     StatusFailed,
}

// NormalizeStatus maps raw status strings onto the enum; unknown values
// default to pending.
func NormalizeStatus(raw string) Status {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusPending
}

// Payment is the canonical record for the console's finance views.
type Payment struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	PatientName string    `json:"patientName"`
	DoctorName  string    `json:"doctorName"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Method      string    `json:"method"`
	Status      Status    `json:"status"`
	PaidAt      time.Time `json:"paidAt"`
	CreatedAt   time.Time `json:"createdAt"`

	Synthetic    bool           `json:"synthetic,omitempty"`
	OriginalData map[string]any `json:"_originalData,omitempty"`
}

// Normalize converts one raw upstream record into a canonical Payment.
// Amounts arrive as numbers or numeric strings; both are accepted.
func Normalize(raw map[string]any) *Payment {
	id := rawjson.Str(raw, "", "id", "_id", "paymentId", "payment_id", "transactionId")

	reference := rawjson.Str(raw, "", "reference", "ref", "invoiceNumber", "invoice_number")
	if reference == "" && id != "" {
		// Older records have no invoice reference; derive one from the id.
		tail := id
		if len(tail) > 8 {
			tail = tail[len(tail)-8:]
		}
		reference = fmt.Sprintf("PAY-%s", strings.ToUpper(tail))
	}
	if reference == "" {
		reference = rawjson.NotProvided
	}

	currency := strings.ToUpper(rawjson.Str(raw, "", "currency"))
	if currency == "" {
		currency = "USD"
	}

	return &Payment{
		ID:           id,
		Reference:    reference,
		PatientName:  rawjson.DecodeName(raw, "patientName", "patient_name", "patient").Display(rawjson.NotProvided),
		DoctorName:   rawjson.DecodeName(raw, "doctorName", "doctor_name", "doctor").Display(rawjson.NotProvided),
		Amount:       rawjson.Num(raw, 0, "amount", "total", "value"),
		Currency:     currency,
		Method:       rawjson.Str(raw, rawjson.NotProvided, "method", "paymentMethod", "payment_method"),
		Status:       NormalizeStatus(rawjson.Str(raw, "", "status", "paymentStatus", "payment_status")),
		PaidAt:       rawjson.Date(raw, "paidAt", "paid_at", "settledAt"),
		CreatedAt:    rawjson.Date(raw, "createdAt", "created_at"),
		OriginalData: raw,
	}
}
