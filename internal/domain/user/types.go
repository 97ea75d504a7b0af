package user

import "github.com/google/uuid"

// Role is the principal kind carried in access tokens.
type Role string

const (
	// RolePro belongs to an offerer and manages its collective offers.
	RolePro Role = "pro"
	// RoleRedactor books stocks on behalf of an educational institution.
	RoleRedactor Role = "redactor"
	RoleAdmin    Role = "admin"
)

func AllRoles() []Role {
	return []Role{RolePro, RoleRedactor, RoleAdmin}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePro, RoleRedactor, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// CheckMembership rejects a pro principal that is not attached to an offerer.
func CheckMembership(role Role, offererID *uuid.UUID) error {
	if role == RolePro && offererID == nil {
		return ErrMissingOfferer
	}
	return nil
}
