package shared

import (
	"time"

	"github.com/google/uuid"
)

// Outbox job states as stored in notification_jobs.status
const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

const JobKindEvent = "event"

// NotificationJob is a claimed outbox row
type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Attempts  int32
	RunAt     time.Time
	CreatedAt time.Time
}
