package events

import (
	"context"
	"log/slog"
)

// LogPublisher is used when Kafka is disabled; events only reach the log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.InfoContext(ctx, "event published",
		"type", msg.Type,
		"key", msg.Key,
		"payload", string(msg.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
