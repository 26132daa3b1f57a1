package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationStatusQueued  = "queued"
	NotificationStatusRunning = "running"
	NotificationStatusDone    = "done"
	NotificationStatusFailed  = "failed"
)

// NotificationJob is a claimed outbox entry.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}
