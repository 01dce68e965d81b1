package user

import (
	"strings"
	"time"

	"github.com/caredash/caredash/internal/platform/rawjson"
)

// Status is the canonical user account status.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

var statusAliases = map[string]Status{
	"active":    StatusActive,
	"enabled":   StatusActive,
	"ativo":     StatusActive,
	"suspended": StatusSuspended,
	"disabled":  StatusSuspended,
	"blocked":   StatusSuspended,
	"locked":    StatusSuspended,
	"suspenso":  StatusSuspended,
}

func NormalizeStatus(raw string) Status {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusActive
}

// Role is the canonical platform role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
	RoleStaff   Role = "staff"
)

var roleAliases = map[string]Role{
	"admin":         RoleAdmin,
	"administrator": RoleAdmin,
	"superadmin":    RoleAdmin,
	"doctor":        RoleDoctor,
	"physician":     RoleDoctor,
	"medico":        RoleDoctor,
	"patient":       RolePatient,
	"paciente":      RolePatient,
	"staff":         RoleStaff,
	"receptionist":  RoleStaff,
	"nurse":         RoleStaff,
}

// NormalizeRole maps raw role strings onto the enum; unknown roles become
// staff rather than leaking through.
func NormalizeRole(raw string) Role {
	if r, ok := roleAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return r
	}
	return RoleStaff
}

// User is the canonical platform account record.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	Initials    string    `json:"initials"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Status      Status    `json:"status"`
	LastLoginAt time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time `json:"createdAt"`

	Synthetic    bool           `json:"synthetic,omitempty"`
	OriginalData map[string]any `json:"_originalData,omitempty"`
}

// Normalize converts one raw upstream record into a canonical User.
func Normalize(raw map[string]any) *User {
	name := rawjson.DecodeName(raw, "name", "fullName", "full_name", "username").Display(rawjson.NotProvided)

	return &User{
		ID:           rawjson.Str(raw, "", "id", "_id", "userId", "user_id"),
		Name:         name,
		DisplayName:  name,
		Initials:     rawjson.Initials(name),
		Email:        rawjson.Str(raw, rawjson.NotProvided, "email"),
		Role:         NormalizeRole(rawjson.Str(raw, "", "role", "userType", "user_type")),
		Status:       NormalizeStatus(rawjson.Str(raw, "", "status", "accountStatus")),
		LastLoginAt:  rawjson.Date(raw, "lastLoginAt", "last_login_at", "lastLogin"),
		CreatedAt:    rawjson.Date(raw, "createdAt", "created_at"),
		OriginalData: raw,
	}
}
