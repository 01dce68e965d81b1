package availability

import "testing"

func TestNormalizeDay(t *testing.T) {
	cases := map[string]string{
		"Mon":      "monday",
		"TUES":     "tuesday",
		"quarta":   "wednesday",
		"thurs":    "thursday",
		"sexta":    "friday",
		"sat":      "saturday",
		"domingo":  "sunday",
		"":         "monday",
		"blursday": "monday",
	}
	for raw, want := range cases {
		if got := NormalizeDay(raw); got != want {
			t.Errorf("NormalizeDay(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	a := Normalize(map[string]any{
		"_id":       "av1",
		"doctor_id": "d1",
		"dayOfWeek": "Fri",
		"from":      "08:30",
		"to":        "12:00",
		"status":    "open",
	})
	if a.ID != "av1" || a.DoctorID != "d1" || a.Day != "friday" {
		t.Errorf("availability = %+v", a)
	}
	if a.Start != "08:30" || a.End != "12:00" {
		t.Errorf("window = %q-%q", a.Start, a.End)
	}
	if a.SlotMinutes != 30 {
		t.Errorf("slotMinutes default = %d", a.SlotMinutes)
	}
	if a.Status != StatusAvailable {
		t.Errorf("status = %q", a.Status)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	a := Normalize(map[string]any{})
	if a.Day != "monday" || a.Start != "09:00" || a.End != "17:00" {
		t.Errorf("availability = %+v", a)
	}
	if a.Status != StatusUnavailable {
		t.Errorf("status = %q", a.Status)
	}
}

func TestGenerateFallback_CoversEveryWeekday(t *testing.T) {
	records := GenerateFallback(42)
	seen := map[string]bool{}
	for _, a := range records {
		if !a.Synthetic {
			t.Fatalf("record not marked synthetic: %+v", a)
		}
		seen[a.Day] = true
	}
	for _, day := range Weekdays {
		if !seen[day] {
			t.Errorf("no schedule entry for %s", day)
		}
	}
}
