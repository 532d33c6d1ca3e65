package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"campsite-booking/internal/infra/events"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/shared"
)

const (
	baseBackoff = 10 * time.Second
	maxBackoff  = 10 * time.Minute
)

// Relay moves queued notification jobs to the event publisher.
// Jobs are claimed and published inside one transaction, so a crash between
// publish and commit re-delivers the job (at-least-once).
type Relay struct {
	uow         shared.UnitOfWork
	publisher   events.Publisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
}

func NewRelay(uow shared.UnitOfWork, publisher events.Publisher, clk clock.Clock, cfg config.SchedulerConfig) *Relay {
	batch := cfg.OutboxBatchSize
	if batch <= 0 {
		batch = 50
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 5
	}
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batch,
		maxAttempts: attempts,
	}
}

// Result summarizes one relay pass.
type Result struct {
	Claimed int
	Sent    int
	Failed  int
}

func (r *Relay) RunOnce(ctx context.Context) (Result, error) {
	var result Result

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = Result{}
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.batchSize)
		if err != nil {
			return err
		}
		result.Claimed = len(jobs)

		for _, job := range jobs {
			pubErr := r.publisher.Publish(ctx, toMessage(job))
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				result.Sent++
				continue
			}

			attempts := job.Attempts + 1
			status := shared.JobStatusQueued
			if attempts >= r.maxAttempts {
				status = shared.JobStatusFailed
			}
			slog.Warn("outbox publish failed",
				"job_id", job.ID,
				"topic", job.Topic,
				"attempts", attempts,
				"status", status,
				"error", pubErr,
			)
			if err := tx.Notifications().RecordFailure(ctx, tx.DB(), job.ID, status, pubErr.Error(), now.Add(Backoff(attempts))); err != nil {
				return err
			}
			result.Failed++
		}
		return nil
	})
	if err != nil {
		return Result{}, errs.Wrap(err, "outbox relay")
	}

	if result.Claimed > 0 {
		slog.Info("outbox relay pass finished", "claimed", result.Claimed, "sent", result.Sent, "failed", result.Failed)
	}
	return result, nil
}

// Backoff doubles from 10s per attempt, capped at 10m.
func Backoff(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := baseBackoff
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

func toMessage(job shared.NotificationJob) events.Message {
	return events.Message{
		Type:    job.Topic,
		Key:     messageKey(job),
		Payload: job.Payload,
		Time:    job.CreatedAt,
	}
}

func messageKey(job shared.NotificationJob) string {
	var body struct {
		ReservationID string `json:"reservation_id"`
	}
	if err := json.Unmarshal(job.Payload, &body); err == nil && body.ReservationID != "" {
		return body.ReservationID
	}
	return job.ID.String()
}
