package doctor

import (
	"encoding/json"
	"testing"

	"github.com/caredash/caredash/internal/platform/rawjson"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNormalize_LegacyShape(t *testing.T) {
	raw := decode(t, `{"_id":"d1","fullName":"Carla Mendes","verified":false,"speciality":"Cardiology","consultation_fee":"150"}`)

	d := Normalize(raw)
	if d.ID != "d1" {
		t.Errorf("ID = %q", d.ID)
	}
	if d.Name != "Carla Mendes" || d.DisplayName != "Dr. Carla Mendes" {
		t.Errorf("name = %q, display = %q", d.Name, d.DisplayName)
	}
	if d.Initials != "CM" {
		t.Errorf("initials = %q", d.Initials)
	}
	if d.Status != StatusPending {
		t.Errorf("verified=false should be pending, got %q", d.Status)
	}
	if d.Specialization != "Cardiology" {
		t.Errorf("specialization = %q", d.Specialization)
	}
	if d.Fee != 150 {
		t.Errorf("string fee should coerce, got %v", d.Fee)
	}
	if d.OriginalData == nil {
		t.Error("original raw record must be retained")
	}
}

func TestNormalize_EmptyRecordDefaultsEverything(t *testing.T) {
	d := Normalize(map[string]any{})
	if d.Name != rawjson.NotProvided {
		t.Errorf("name = %q", d.Name)
	}
	if d.Email != rawjson.NotProvided || d.Phone != rawjson.NotProvided || d.Specialization != rawjson.NotProvided {
		t.Errorf("contact defaults: %+v", d)
	}
	if d.Qualifications == nil {
		t.Error("qualifications must be an empty slice, not nil")
	}
	if d.Status != StatusPending {
		t.Errorf("status = %q", d.Status)
	}
	if d.Fee != 0 || d.ExperienceYrs != 0 {
		t.Errorf("numeric defaults: fee=%v exp=%d", d.Fee, d.ExperienceYrs)
	}
}

func TestNormalize_NestedSpecialization(t *testing.T) {
	raw := decode(t, `{"id":"d2","name":"Ravi Patel","specialization":{"id":"s1","name":"Dermatology"}}`)
	if d := Normalize(raw); d.Specialization != "Dermatology" {
		t.Errorf("specialization = %q", d.Specialization)
	}
}

func TestNormalize_NamePartsObject(t *testing.T) {
	raw := decode(t, `{"id":"d3","name":{"first":"Liam","last":"Okafor"}}`)
	d := Normalize(raw)
	if d.Name != "Liam Okafor" {
		t.Errorf("name = %q", d.Name)
	}
	if d.DisplayName != "Dr. Liam Okafor" {
		t.Errorf("display = %q", d.DisplayName)
	}
}

func TestNormalizeStatus_Aliases(t *testing.T) {
	cases := map[string]Status{
		"Verified":     StatusVerified,
		"APPROVED":     StatusVerified,
		"verificado":   StatusVerified,
		" in_review ":  StatusPending,
		"unverified":   StatusPending,
		"denied":       StatusRejected,
		"rejeitado":    StatusRejected,
		"":             StatusPending,
		"flux-capacit": StatusPending,
	}
	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := decode(t, `{"id":"d4","name":"Sofia Lima","status":"approved","experience":7}`)
	first := Normalize(raw)

	round, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	second := Normalize(decode(t, string(round)))

	if second.ID != first.ID || second.Name != first.Name || second.Status != first.Status {
		t.Errorf("second pass diverged: %+v vs %+v", second, first)
	}
	if second.DisplayName != "Dr. Sofia Lima" {
		t.Errorf("display must not double-prefix, got %q", second.DisplayName)
	}
	if second.ExperienceYrs != 7 {
		t.Errorf("experience = %d", second.ExperienceYrs)
	}
}

func TestGenerateFallback_DeterministicAndMarked(t *testing.T) {
	a := GenerateFallback(42)
	b := GenerateFallback(42)
	if len(a) != fallbackCount {
		t.Fatalf("len = %d", len(a))
	}
	for i := range a {
		if !a[i].Synthetic {
			t.Fatalf("record %d not marked synthetic", i)
		}
		if a[i].ID == "" || a[i].ID != b[i].ID || a[i].Name != b[i].Name {
			t.Fatalf("same seed must reproduce record %d: %+v vs %+v", i, a[i], b[i])
		}
	}
	if other := GenerateFallback(7); other[0].Name == a[0].Name && other[1].Name == a[1].Name {
		t.Error("different seeds produced identical records")
	}
}
