package model

type Role int

const (
	RoleNone Role = iota
	RoleStudent
	RoleTA
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleTA:
		return "ta"
	case RoleAdmin:
		return "admin"
	default:
		return "none"
	}
}

// ClassifyRole picks the single role for a set of memberships: the admin
// flag wins, then Teaching Assistants, then Students.
func ClassifyRole(isAdmin, isTA, isStudent bool) Role {
	switch {
	case isAdmin:
		return RoleAdmin
	case isTA:
		return RoleTA
	case isStudent:
		return RoleStudent
	default:
		return RoleNone
	}
}
