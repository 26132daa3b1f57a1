package reservation

import (
	"github.com/google/uuid"

	"canteen-reservation/internal/domain/user"
)

// Actor is whoever performs an operation.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsStaff() bool { return a.Role.IsStaff() }

type Intent int

const (
	IntentView Intent = iota
	IntentChangeChoice
	IntentCancel
	IntentSetStatus
)

func (i Intent) String() string {
	switch i {
	case IntentView:
		return "view"
	case IntentChangeChoice:
		return "change choice"
	case IntentCancel:
		return "cancel"
	case IntentSetStatus:
		return "set status"
	default:
		return "unknown"
	}
}

// CanActOn is the single permission rule for reservations: staff may do
// anything, owners may do anything except record service outcomes.
func CanActOn(actor Actor, ownerID uuid.UUID, intent Intent) bool {
	if actor.IsStaff() {
		return true
	}
	if actor.UserID != ownerID {
		return false
	}
	return intent != IntentSetStatus
}

// DeadlineApplies reports whether the daily cut-off binds actor.
func DeadlineApplies(actor Actor) bool {
	return !actor.IsStaff()
}

// CanActFor reports whether actor may book on behalf of userID.
func CanActFor(actor Actor, userID uuid.UUID) bool {
	return actor.UserID == userID || actor.IsStaff()
}
