package domain

import "github.com/google/uuid"

type Role string

const (
	RoleOperator Role = "OPERATOR"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// Actor is the caller identity resolved by the excluded auth layer. The
// core only ever asks it role questions.
type Actor struct {
	ID    uuid.UUID
	Roles []Role
}

func (a Actor) HasAnyRole(roles ...Role) bool {
	for _, have := range a.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// CanApprove reports whether the actor may decide approval requests and
// bypass the free-edit window.
func (a Actor) CanApprove() bool {
	return a.HasAnyRole(RoleManager, RoleAdmin)
}
