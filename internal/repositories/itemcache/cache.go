// Package itemcache decorates an item repository with a Redis read-through
// cache for stored items and interpolation ranges.
package itemcache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	"github.com/tinkertools/tinker-api/internal/entities/ao"
	"github.com/tinkertools/tinker-api/internal/errors"
	redisclient "github.com/tinkertools/tinker-api/internal/redis"
	"github.com/tinkertools/tinker-api/internal/repositories/items"
)

const (
	itemKeyPrefix   = "item:"
	interpKeyPrefix = "interp:"

	// DefaultTTL applies when Config.TTL is zero
	DefaultTTL = 15 * time.Minute

	// sharedFetchTimeout bounds a collapsed miss, which outlives the caller
	// that started it
	sharedFetchTimeout = 30 * time.Second
)

// Config contains configuration for the cache decorator
type Config struct {
	Client redisclient.Client
	Next   items.Repository
	TTL    time.Duration
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Next == nil {
		return errors.InvalidArgument("next repository cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type cache struct {
	client redisclient.Client
	next   items.Repository
	ttl    time.Duration
	group  singleflight.Group
}

// New wraps cfg.Next with the cache. Redis failures are logged and the call
// falls through to the wrapped repository.
func New(cfg *Config) (items.Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &cache{
		client: cfg.Client,
		next:   cfg.Next,
		ttl:    ttl,
	}, nil
}

// ItemKey returns the cache key of a stored item
func ItemKey(aoid int64, ql int) string {
	return fmt.Sprintf("%s%d:%d", itemKeyPrefix, aoid, ql)
}

// InterpolationKey returns the cache key of a family's ranges
func InterpolationKey(aoid int64) string {
	return fmt.Sprintf("%s%d", interpKeyPrefix, aoid)
}

func (c *cache) GetItem(ctx context.Context, input items.GetItemInput) (*items.GetItemOutput, error) {
	key := ItemKey(input.AOID, input.QL)

	var item ao.Item
	if c.load(ctx, key, &item) {
		return &items.GetItemOutput{Item: &item}, nil
	}

	v, err := c.shared(ctx, key, func(ctx context.Context) (any, error) {
		out, err := c.next.GetItem(ctx, input)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, out.Item)
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*items.GetItemOutput), nil
}

func (c *cache) GetInterpolationInfo(ctx context.Context, input items.GetInterpolationInfoInput) (*items.GetInterpolationInfoOutput, error) {
	key := InterpolationKey(input.AOID)

	var ranges []ao.InterpolationRange
	if c.load(ctx, key, &ranges) {
		return &items.GetInterpolationInfoOutput{AOID: input.AOID, Ranges: ranges}, nil
	}

	v, err := c.shared(ctx, key, func(ctx context.Context) (any, error) {
		out, err := c.next.GetInterpolationInfo(ctx, input)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, out.Ranges)
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*items.GetInterpolationInfoOutput), nil
}

func (c *cache) SearchItems(ctx context.Context, input items.SearchItemsInput) (*items.SearchItemsOutput, error) {
	return c.next.SearchItems(ctx, input)
}

func (c *cache) UpsertItems(ctx context.Context, input items.UpsertItemsInput) (*items.UpsertItemsOutput, error) {
	out, err := c.next.UpsertItems(ctx, input)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		keys = append(keys, ItemKey(item.AOID, item.QL))
	}
	c.invalidate(ctx, keys...)

	return out, nil
}

func (c *cache) ReplaceRanges(ctx context.Context, input items.ReplaceRangesInput) (*items.ReplaceRangesOutput, error) {
	out, err := c.next.ReplaceRanges(ctx, input)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, InterpolationKey(input.AOID))
	return out, nil
}

// shared collapses concurrent misses on key into one fetch. The fetch keeps
// the first caller's values but not its cancellation; each caller stops
// waiting when its own context ends.
func (c *cache) shared(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		return fetch(fetchCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// load decodes a cached entry into dest and reports a hit
func (c *cache) load(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redisclient.Nil {
			slog.WarnContext(ctx, "Item cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		slog.WarnContext(ctx, "Dropping undecodable cache entry", "key", key, "error", err)
		c.invalidate(ctx, key)
		return false
	}
	return true
}

func (c *cache) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.WarnContext(ctx, "Item cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "Item cache write failed", "key", key, "error", err)
	}
}

func (c *cache) invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	pipe := c.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		slog.WarnContext(ctx, "Item cache invalidation failed", "keys", keys, "error", err)
	}
}
