package events

import (
	"context"
	"time"
)

// Message is one outbox entry ready for delivery.
type Message struct {
	Type    string
	Key     string
	Payload []byte
	Time    time.Time
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}
