package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
)

// Kind is the canonical notification category.
type Kind string

const (
	KindAppointment Kind = "appointment"
	KindPayment     Kind = "payment"
	KindSystem      Kind = "system"
)

var kindAliases = map[string]Kind{
	"appointment":  KindAppointment,
	"booking":      KindAppointment,
	"schedule":     KindAppointment,
	"payment":      KindPayment,
	"billing":      KindPayment,
	"invoice":      KindPayment,
	"system":       KindSystem,
	"announcement": KindSystem,
	"alert":        KindSystem,
}

// NormalizeKind maps raw notification types onto the category enum;
// unknown types become system notifications.
func NormalizeKind(raw string) Kind {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return k
	}
	return KindSystem
}

// Notification is the canonical record for the console's notification feed.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	AgeLabel  string    `json:"ageLabel"`

	Synthetic    bool           `json:"synthetic,omitempty"`
	OriginalData map[string]any `json:"_originalData,omitempty"`
}

// ageLabel renders a compact relative age ("3h ago"). Derived on every
// normalization pass, never persisted.
func ageLabel(created, now time.Time) string {
	if created.IsZero() || created.After(now) {
		return ""
	}
	d := now.Sub(created)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// Normalize converts one raw upstream record into a canonical Notification.
func Normalize(raw map[string]any) *Notification {
	created := rawjson.Date(raw, "createdAt", "created_at", "timestamp", "sentAt")

	read := rawjson.Bool(raw, false, "read", "isRead", "is_read")
	if s := rawjson.Str(raw, "", "status"); s != "" {
		read = strings.EqualFold(s, "read")
	}

	return &Notification{
		ID:           rawjson.Str(raw, "", "id", "_id", "notificationId"),
		Kind:         NormalizeKind(rawjson.Str(raw, "", "kind", "type", "category")),
		Title:        rawjson.Str(raw, rawjson.NotProvided, "title", "subject"),
		Message:      rawjson.Str(raw, rawjson.NotProvided, "message", "body", "text"),
		Read:         read,
		CreatedAt:    created,
		AgeLabel:     ageLabel(created, time.Now()),
		OriginalData: raw,
	}
}
