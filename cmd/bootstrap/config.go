package bootstrap

import (
	"strings"

	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and rejects combinations that would only fail later at runtime.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := validateConfig(cfg); err != nil {
		return config.Config{}, errs.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func validateConfig(cfg config.Config) error {
	if cfg.DB.MaxConns <= 0 {
		return errs.New("DB_MAX_CONNS must be positive")
	}
	if cfg.DB.TxMaxRetries < 0 {
		return errs.New("DB_TX_MAX_RETRIES must not be negative")
	}

	switch strings.ToLower(cfg.Cookie.SameSite) {
	case "lax", "strict":
	case "none":
		// browsers drop SameSite=None cookies without Secure
		if !cfg.Cookie.Secure {
			return errs.New("COOKIE_SAME_SITE=None requires COOKIE_SECURE=true")
		}
	default:
		return errs.Wrapf(errs.New("unknown SameSite mode"), "COOKIE_SAME_SITE=%q", cfg.Cookie.SameSite)
	}

	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return errs.New("KAFKA_BROKERS is required when Kafka is enabled")
	}
	if cfg.Scheduler.Enabled {
		if cfg.Scheduler.OutboxInterval <= 0 {
			return errs.New("OUTBOX_INTERVAL must be positive")
		}
		if cfg.Scheduler.OutboxBatchSize <= 0 || cfg.Scheduler.MaxAttempts <= 0 {
			return errs.New("OUTBOX_BATCH_SIZE and OUTBOX_MAX_ATTEMPTS must be positive")
		}
	}
	return nil
}
