package auth

import "petsit_backend/internal/models"

// Action names an operation a user may attempt on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionVerify Action = "verify"
)

// Owned is any resource with a single owning user.
type Owned interface {
	OwnerUserID() string
}

// OwnedBy adapts a bare owner id to the Owned interface.
type OwnedBy string

func (o OwnedBy) OwnerUserID() string { return string(o) }

// Can is the single policy decision point for ownership and role checks.
// Admins may do anything; everyone else only touches what they own, and
// verification is admin-only regardless of ownership.
func Can(actor *models.User, action Action, resource Owned) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if action == ActionVerify {
		return false
	}
	return resource != nil && resource.OwnerUserID() == actor.ID
}
