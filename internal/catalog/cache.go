package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"bet-engine/internal/model"
)

// Ensure implementation satisfies interface at compile time
var _ Catalog = (*CachedCatalog)(nil)

// CachedCatalog decorates a Catalog with a short-TTL redis cache of event
// snapshots. Staleness is bounded by the TTL; odds snapshotted onto a bet at
// placement are authoritative regardless.
type CachedCatalog struct {
	next   Catalog
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewCachedCatalog(next Catalog, client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CachedCatalog {
	return &CachedCatalog{next: next, client: client, ttl: ttl, logger: logger}
}

func ConnectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

func eventKey(eventID int64) string {
	return fmt.Sprintf("event:%d", eventID)
}

func (c *CachedCatalog) EventByID(ctx context.Context, eventID int64) (*model.Event, error) {
	key := eventKey(eventID)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		ev := &model.Event{}
		if jsonErr := json.Unmarshal(raw, ev); jsonErr == nil {
			return ev, nil
		}
		// Corrupt cache entry, fall through to the source.
		c.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn().Err(err).Int64("event_id", eventID).Msg("redis read failed, falling back to source")
	}

	ev, err := c.next.EventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(ev); err == nil {
		if setErr := c.client.Set(ctx, key, raw, c.ttl).Err(); setErr != nil {
			c.logger.Warn().Err(setErr).Int64("event_id", eventID).Msg("redis write failed")
		}
	}
	return ev, nil
}
