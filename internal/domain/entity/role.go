// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have in the system.
// Unlike profile-based systems, every account holds exactly one role and the
// role never changes after registration.
type Role string

const (
	// RoleAdmin manages the material catalog and reviews redemptions.
	RoleAdmin Role = "admin"
	// RoleCollector processes plastic returns at a collection point.
	RoleCollector Role = "collector"
	// RoleUser is a participant who earns and redeems points.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCollector, RoleUser:
		return true
	default:
		return false
	}
}

// Registerable reports whether the role may be chosen at self-registration.
// Admin accounts are seeded out of band, never self-registered.
func (r Role) Registerable() bool {
	return r == RoleCollector || r == RoleUser
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
