package model

import "strings"

// Role identifies what a signed-in user may see.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleAdmin
}

// User is the identity returned by the backend on login.
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role" validate:"required,oneof=patient admin"`
}

// FirstName returns the first word of the user's name, used for the nav greeting.
func (u User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
