package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/wanderly/discovery-api/schema"
)

const logPrefix = "cache"

// ErrMiss is returned when no trending list is cached for a cell. It is a
// normal condition, distinct from the cache store being unreachable.
var ErrMiss = errors.New("trending cache miss")

// TrendingCache stores per-cell trending lists with a TTL. The value's own
// computed_at/ttl pair decides freshness; the backend key expiry only
// bounds storage of abandoned cells.
type TrendingCache interface {
	GetTrending(ctx context.Context, geohash string) (*schema.TrendingList, error)
	PutTrending(ctx context.Context, list *schema.TrendingList) error
}

type redisCache struct {
	client *redis.Client
}

// NewTrending builds a TrendingCache over a redis client.
func NewTrending(client *redis.Client) TrendingCache {
	return &redisCache{client: client}
}

func trendingKey(geohash string) string {
	return "trending:" + geohash
}

func (c *redisCache) GetTrending(ctx context.Context, geohash string) (*schema.TrendingList, error) {
	raw, err := c.client.Get(ctx, trendingKey(geohash)).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("trending cache read: %w", err)
	}

	var list schema.TrendingList
	if err := json.Unmarshal(raw, &list); err != nil {
		// a corrupt entry behaves like a miss so the caller recomputes
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"geohash": geohash,
			"error":   err,
		}).Warn("drop corrupt trending entry")
		return nil, ErrMiss
	}

	return &list, nil
}

func (c *redisCache) PutTrending(ctx context.Context, list *schema.TrendingList) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}

	// keep the key around for twice the logical TTL so a stale-but-present
	// entry can still be inspected; freshness is judged from the value
	if err := c.client.Set(ctx, trendingKey(list.Geohash), raw, 2*list.TTL).Err(); err != nil {
		return fmt.Errorf("trending cache write: %w", err)
	}
	return nil
}
