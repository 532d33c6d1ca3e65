package bootstrap

import (
	"context"
	"log/slog"

	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// the booking exclusion constraint needs btree_gist; fail fast when migrations were skipped
			var ok bool
			if err := pool.QueryRow(ctx,
				"SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'btree_gist')").Scan(&ok); err != nil {
				return err
			}
			if !ok {
				logger.Warn("btree_gist extension missing; run migrations before serving bookings")
			}
			logger.Info("database ready",
				"host", cfg.DB.Host,
				"database", cfg.DB.DBName,
				"max_conns", pool.Config().MaxConns)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
