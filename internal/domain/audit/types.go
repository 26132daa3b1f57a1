package audit

import "canteen-reservation/internal/domain/reservation"

type Action string

const (
	ActionReservationCreated   Action = "RESERVATION_CREATED"
	ActionReservationModified  Action = "RESERVATION_MODIFIED"
	ActionReservationServed    Action = "RESERVATION_SERVED"
	ActionReservationNoShow    Action = "RESERVATION_NO_SHOW"
	ActionReservationCancelled Action = "RESERVATION_CANCELLED"
	ActionSettingsUpdated      Action = "SETTINGS_UPDATED"
	ActionMenuCreated          Action = "MENU_CREATED"
	ActionMenuModified         Action = "MENU_MODIFIED"
	ActionMenuPublished        Action = "MENU_PUBLISHED"
	ActionMenuUnpublished      Action = "MENU_UNPUBLISHED"
	ActionMenuDeleted          Action = "MENU_DELETED"
)

func (a Action) String() string { return string(a) }

type EntityType string

const (
	EntityReservation EntityType = "Reservation"
	EntityMenu        EntityType = "Menu"
	EntitySettings    EntityType = "Settings"
)

func (e EntityType) String() string { return string(e) }

// ActionForStatus names the audit action recorded when a reservation is
// moved to status.
func ActionForStatus(status reservation.Status) Action {
	switch status {
	case reservation.StatusServed:
		return ActionReservationServed
	case reservation.StatusNoShow:
		return ActionReservationNoShow
	default:
		return ActionReservationModified
	}
}
