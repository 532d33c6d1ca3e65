//go:build unit

package bootstrap

import (
	"testing"

	"campsite-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "test config is valid", mutate: func(*config.Config) {}},
		{name: "same site is case-insensitive", mutate: func(c *config.Config) { c.Cookie.SameSite = "STRICT" }},
		{
			name:    "unknown same site",
			mutate:  func(c *config.Config) { c.Cookie.SameSite = "Relaxed" },
			wantErr: "COOKIE_SAME_SITE",
		},
		{
			name:    "same site none without secure",
			mutate:  func(c *config.Config) { c.Cookie.SameSite = "None"; c.Cookie.Secure = false },
			wantErr: "COOKIE_SECURE",
		},
		{
			name:   "same site none with secure",
			mutate: func(c *config.Config) { c.Cookie.SameSite = "None"; c.Cookie.Secure = true },
		},
		{
			name:    "zero pool size",
			mutate:  func(c *config.Config) { c.DB.MaxConns = 0 },
			wantErr: "DB_MAX_CONNS",
		},
		{
			name:    "kafka without brokers",
			mutate:  func(c *config.Config) { c.Kafka.Enabled = true; c.Kafka.Brokers = nil },
			wantErr: "KAFKA_BROKERS",
		},
		{
			name:    "scheduler with zero interval",
			mutate:  func(c *config.Config) { c.Scheduler.Enabled = true; c.Scheduler.OutboxInterval = 0 },
			wantErr: "OUTBOX_INTERVAL",
		},
		{
			name:   "disabled scheduler is not checked",
			mutate: func(c *config.Config) { c.Scheduler.Enabled = false; c.Scheduler.OutboxBatchSize = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
