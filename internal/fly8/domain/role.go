package domain

import (
	"fmt"
	"strings"
)

// Role decides which operations a user may invoke.
type Role string

const (
	RoleStudent    Role = "student"
	RoleCounselor  Role = "counselor"
	RoleAgent      Role = "agent"
	RoleSuperAdmin Role = "super_admin"
)

// Roles lists every known role.
var Roles = []Role{RoleStudent, RoleCounselor, RoleAgent, RoleSuperAdmin}

// ParseRole accepts the exact wire value of a known role. Case and
// surrounding space are forgiven; anything else is rejected.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalid, s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCounselor, RoleAgent, RoleSuperAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
