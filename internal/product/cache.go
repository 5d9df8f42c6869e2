package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// CachedRepo serves product detail reads from Redis. Listing and price
// quotes always hit the underlying repository so checkout never prices
// from a stale entry.
type CachedRepo struct {
	Repository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedRepo(inner Repository, client *redis.Client, ttl time.Duration) *CachedRepo {
	return &CachedRepo{Repository: inner, client: client, ttl: ttl}
}

func cacheKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

func (c *CachedRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	key := cacheKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p Product
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
		log.WithField("key", key).Warn("[cache] dropping undecodable product entry")
		_ = c.client.Del(ctx, key).Err()
	case !errors.Is(err, redis.Nil):
		log.WithError(err).WithField("key", key).Warn("[cache] redis get failed, falling back to db")
	}

	p, err := c.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(p); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			log.WithError(err).WithField("key", key).Warn("[cache] redis set failed")
		}
	}
	return p, nil
}
