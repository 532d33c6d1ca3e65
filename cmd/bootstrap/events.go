package bootstrap

import (
	"context"
	"log/slog"

	"campsite-booking/internal/infra/events"
	"campsite-booking/internal/infra/outbox"
	"campsite-booking/internal/infra/scheduler"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
		NewOutboxRelay,
		fx.Annotate(
			func(r *outbox.Relay) *outbox.Relay { return r },
			fx.As(new(scheduler.OutboxRunner)),
		),
	),
	fx.Invoke(StartScheduler),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (events.Publisher, error) {
	var (
		publisher events.Publisher
		err       error
	)
	if cfg.Kafka.Enabled {
		publisher, err = events.NewKafkaPublisher(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		logger.Info("kafka publisher configured", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		publisher = events.NewLogPublisher(logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher events.Publisher, clk clock.Clock, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(uow, publisher, clk, cfg.Scheduler)
}

// StartScheduler runs the outbox relay in the background. The scheduler stops before the publisher closes
// because fx runs OnStop hooks in reverse order.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, relay scheduler.OutboxRunner, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		logger.Info("scheduler disabled, outbox jobs stay queued")
		return nil
	}

	s, err := scheduler.New(cfg.Scheduler, relay, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			logger.Info("scheduler started", "jobs", s.Jobs())
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Shutdown()
		},
	})
	return nil
}
