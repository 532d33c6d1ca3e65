package bootstrap

import (
	"context"
	"log/slog"

	"campsite-booking/internal/infra/cache"
	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewSuggestionCache,
			fx.As(new(queries.SuggestionCache)),
			fx.As(new(commands.SuggestionInvalidator)),
		),
	),
)

type suggestionCache interface {
	queries.SuggestionCache
	commands.SuggestionInvalidator
}

// NewSuggestionCache falls back to a no-op cache when Redis is disabled. An unreachable Redis at startup is
// fatal, later outages only degrade to database reads.
func NewSuggestionCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (suggestionCache, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, suggestion cache is a no-op")
		return cache.NoopSuggestionCache{}, nil
	}

	client, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewRedisSuggestionCache(client, cfg.Redis.SuggestionTTL), nil
}
