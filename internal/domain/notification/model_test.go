package notification

import (
	"encoding/json"
	"testing"
	"time"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestAgeLabel(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		created time.Time
		want    string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
		{time.Time{}, ""},
		{now.Add(time.Hour), ""},
	}
	for _, tc := range cases {
		if got := ageLabel(tc.created, now); got != tc.want {
			t.Errorf("ageLabel(%v) = %q, want %q", tc.created, got, tc.want)
		}
	}
}

func TestNormalize_ReadShapes(t *testing.T) {
	if n := Normalize(decode(t, `{"id":"n1","isRead":true}`)); !n.Read {
		t.Error("isRead bool ignored")
	}
	if n := Normalize(decode(t, `{"id":"n2","status":"READ"}`)); !n.Read {
		t.Error("status string ignored")
	}
	if n := Normalize(decode(t, `{"id":"n3","status":"unread","read":true}`)); n.Read {
		t.Error("status must win over the bool when both are present")
	}
}

func TestNormalizeKind_Aliases(t *testing.T) {
	cases := map[string]Kind{
		"booking":      KindAppointment,
		"Invoice":      KindPayment,
		"announcement": KindSystem,
		"mystery":      KindSystem,
	}
	for raw, want := range cases {
		if got := NormalizeKind(raw); got != want {
			t.Errorf("NormalizeKind(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestGenerateFallback(t *testing.T) {
	records := GenerateFallback(42)
	if len(records) != fallbackCount {
		t.Fatalf("len = %d", len(records))
	}
	for _, n := range records {
		if !n.Synthetic || n.ID == "" || n.Title == "" {
			t.Fatalf("record = %+v", n)
		}
		if n.AgeLabel == "" {
			t.Fatalf("missing age label: %+v", n)
		}
	}
}
