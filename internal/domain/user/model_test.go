package user

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

func TestNormalize(t *testing.T) {
	raw := decode(t, `{"_id":"u1","username":"Pedro Alves","role":"physician","accountStatus":"locked"}`)
	u := Normalize(raw)
	if u.ID != "u1" || u.Name != "Pedro Alves" || u.Initials != "PA" {
		t.Errorf("user = %+v", u)
	}
	if u.Role != RoleDoctor {
		t.Errorf("role = %q", u.Role)
	}
	if u.Status != StatusSuspended {
		t.Errorf("status = %q", u.Status)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	u := Normalize(map[string]any{})
	if u.Name != rawjson.NotProvided || u.Email != rawjson.NotProvided {
		t.Errorf("user = %+v", u)
	}
	if u.Role != RoleStaff || u.Status != StatusActive {
		t.Errorf("role = %q status = %q", u.Role, u.Status)
	}
}

func TestNormalizeRole_Aliases(t *testing.T) {
	cases := map[string]Role{
		"Administrator": RoleAdmin,
		"SUPERADMIN":    RoleAdmin,
		"medico":        RoleDoctor,
		"paciente":      RolePatient,
		"receptionist":  RoleStaff,
		"wizard":        RoleStaff,
	}
	for raw, want := range cases {
		if got := NormalizeRole(raw); got != want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", raw, got, want)
		}
	}
}
