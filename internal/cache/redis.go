package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Domenick1991/spacify/config"
	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/redis/go-redis/v9"
)

const prefsPrefix = "prefs:"

type RedisCache struct {
	client    redis.Cmdable
	offersTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, offersTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		offersTTL,
	)
}

func NewRedisCacheWithClient(client redis.Cmdable, offersTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, offersTTL: offersTTL}
}

func (c *RedisCache) GetOffers(ctx context.Context) ([]domain.Offer, error) {
	data, err := c.client.Get(ctx, offersKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var offers []domain.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (c *RedisCache) SetOffers(ctx context.Context, offers []domain.Offer) error {
	payload, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, offersKey(), payload, c.offersTTL).Err()
}

// Get implements the preferences key-value port. A missing key reports ok=false.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, prefsPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, prefsPrefix+key, value, 0).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, prefsPrefix+key).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// KV is the string key-value surface shared by RedisCache and MemoryKV.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ReachableKV returns c when Redis answers a ping and a fresh MemoryKV
// otherwise, so preferences keep working without Redis.
func ReachableKV(ctx context.Context, c *RedisCache, log *slog.Logger) KV {
	if err := c.Ping(ctx); err != nil {
		log.Warn("redis unreachable, keeping preferences in memory", "error", err)
		return NewMemoryKV()
	}
	return c
}

func offersKey() string {
	return "cache:offers"
}
