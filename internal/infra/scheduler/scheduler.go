package scheduler

import (
	"context"
	"log/slog"
	"time"

	"campsite-booking/internal/infra/outbox"
	"campsite-booking/internal/pkg/config"

	"github.com/go-co-op/gocron/v2"
)

const OutboxJobName = "outbox-relay"

// OutboxRunner is the part of the relay the scheduler drives
type OutboxRunner interface {
	RunOnce(ctx context.Context) (outbox.Result, error)
}

type Scheduler struct {
	cron gocron.Scheduler
}

func New(cfg config.SchedulerConfig, relay OutboxRunner, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(logger),
		gocron.WithStopTimeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}

	interval := cfg.OutboxInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func(ctx context.Context) {
			if _, err := relay.RunOnce(ctx); err != nil {
				logger.Error("outbox relay failed", "error", err)
			}
		}),
		gocron.WithName(OutboxJobName),
		// a slow broker must not stack up passes over the same rows
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, err
	}

	return &Scheduler{cron: s}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.cron.Shutdown()
}

// Jobs lists the registered job names.
func (s *Scheduler) Jobs() []string {
	jobs := s.cron.Jobs()
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Name()
	}
	return names
}
