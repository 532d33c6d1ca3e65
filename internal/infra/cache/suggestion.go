package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"campsite-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	suggestKeyPrefix  = "campings:suggest"
	suggestVersionKey = "campings:suggest:version"
)

// RedisSuggestionCache stores suggestion lists under a version namespace.
// Invalidate bumps the version, so stale keys are never read again and expire via TTL.
type RedisSuggestionCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisSuggestionCache(client redis.Cmdable, ttl time.Duration) *RedisSuggestionCache {
	return &RedisSuggestionCache{client: client, ttl: ttl}
}

func (c *RedisSuggestionCache) Get(ctx context.Context, q string) ([]*queries.SuggestionView, bool, error) {
	key, err := c.key(ctx, q)
	if err != nil {
		return nil, false, err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var items []*queries.SuggestionView
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("decode cached suggestions: %w", err)
	}
	return items, true, nil
}

func (c *RedisSuggestionCache) Set(ctx context.Context, q string, items []*queries.SuggestionView) error {
	key, err := c.key(ctx, q)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode suggestions: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisSuggestionCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, suggestVersionKey).Err(); err != nil {
		return fmt.Errorf("redis incr %s: %w", suggestVersionKey, err)
	}
	return nil
}

func (c *RedisSuggestionCache) key(ctx context.Context, q string) (string, error) {
	version, err := c.client.Get(ctx, suggestVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		version = 0
	} else if err != nil {
		return "", fmt.Errorf("redis get %s: %w", suggestVersionKey, err)
	}
	return fmt.Sprintf("%s:v%d:%s", suggestKeyPrefix, version, strings.ToLower(strings.TrimSpace(q))), nil
}

// NoopSuggestionCache is wired when Redis is disabled.
type NoopSuggestionCache struct{}

func (NoopSuggestionCache) Get(context.Context, string) ([]*queries.SuggestionView, bool, error) {
	return nil, false, nil
}

func (NoopSuggestionCache) Set(context.Context, string, []*queries.SuggestionView) error {
	return nil
}

func (NoopSuggestionCache) Invalidate(context.Context) error {
	return nil
}
