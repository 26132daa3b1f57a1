package audit

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

type Details map[string]any

// Entry is an immutable audit record. Entries are only ever appended.
type Entry struct {
	id            uuid.UUID
	performedByID uuid.UUID
	userID        *uuid.UUID
	action        Action
	entityType    EntityType
	entityID      string
	details       Details
	createdAt     time.Time
}

// NewEntry records that performedBy did action on an entity. userID is the
// user the entity belongs to, when there is one.
func NewEntry(
	performedBy uuid.UUID,
	userID *uuid.UUID,
	action Action,
	entityType EntityType,
	entityID string,
	details Details,
	now time.Time,
) *Entry {
	return &Entry{
		id:            uuid.New(),
		performedByID: performedBy,
		userID:        userID,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		details:       maps.Clone(details),
		createdAt:     now,
	}
}

func Reconstruct(
	id, performedBy uuid.UUID,
	userID *uuid.UUID,
	action Action,
	entityType EntityType,
	entityID string,
	details Details,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:            id,
		performedByID: performedBy,
		userID:        userID,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		details:       details,
		createdAt:     createdAt,
	}
}

func (e *Entry) ID() uuid.UUID            { return e.id }
func (e *Entry) PerformedByID() uuid.UUID { return e.performedByID }
func (e *Entry) UserID() *uuid.UUID       { return e.userID }
func (e *Entry) Action() Action           { return e.action }
func (e *Entry) EntityType() EntityType   { return e.entityType }
func (e *Entry) EntityID() string         { return e.entityID }
func (e *Entry) Details() Details         { return maps.Clone(e.details) }
func (e *Entry) CreatedAt() time.Time     { return e.createdAt }
