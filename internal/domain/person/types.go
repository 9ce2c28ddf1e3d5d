// Package person models role membership as a capability set attached to a
// person. Roles are granted idempotently (EnsureRole on the store) before any
// operation that depends on them.
package person

type Role string

const (
	RoleClient     Role = "client"
	RoleHost       Role = "host"
	RoleGuest      Role = "guest"
	RoleController Role = "controller"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleHost, RoleGuest, RoleController:
		return true
	default:
		return false
	}
}
