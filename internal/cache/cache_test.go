package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/spacify/config"
	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/logging"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCacheWithClient(client, ttl), srv
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)
	assert.NotNil(t, c)
	assert.Equal(t, time.Minute, c.offersTTL)
}

func TestRedisCache_Offers(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, time.Minute)

	cached, err := c.GetOffers(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)

	offers := []domain.Offer{
		{ID: "C1", Origin: "JNPT, Mumbai", Destination: "Dubai, UAE", Mode: domain.ModeSea, PricePerCBM: 35000, Status: domain.OfferStatusActive},
		{ID: "C3", Origin: "Delhi ICD", Destination: "Kolkata Port", Mode: domain.ModeRail, PricePerCBM: 8000, Status: domain.OfferStatusActive},
	}
	require.NoError(t, c.SetOffers(ctx, offers))
	assert.True(t, srv.Exists("cache:offers"))
	assert.Equal(t, time.Minute, srv.TTL("cache:offers"))

	cached, err = c.GetOffers(ctx)
	require.NoError(t, err)
	assert.Equal(t, offers, cached)

	srv.FastForward(time.Minute)
	cached, err = c.GetOffers(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisCache_OffersCorruptPayload(t *testing.T) {
	c, srv := newTestCache(t, time.Minute)
	require.NoError(t, srv.Set("cache:offers", "{not json"))

	_, err := c.GetOffers(context.Background())
	assert.Error(t, err)
}

func TestRedisCache_KV(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		seed   map[string]string
		key    string
		want   string
		wantOK bool
	}{
		{name: "missing key", key: "spacify_theme"},
		{name: "stored value", seed: map[string]string{"prefs:spacify_theme": "dark"}, key: "spacify_theme", want: "dark", wantOK: true},
		{name: "unprefixed key is not visible", seed: map[string]string{"spacify_theme": "dark"}, key: "spacify_theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestCache(t, time.Minute)
			for k, v := range tt.seed {
				require.NoError(t, srv.Set(k, v))
			}

			got, ok, err := c.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRedisCache_SetDelete(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, time.Minute)

	require.NoError(t, c.Set(ctx, "spacify_tour_completed", "true"))
	stored, err := srv.Get("prefs:spacify_tour_completed")
	require.NoError(t, err)
	assert.Equal(t, "true", stored)
	// preferences never expire
	assert.Zero(t, srv.TTL("prefs:spacify_tour_completed"))

	require.NoError(t, c.Delete(ctx, "spacify_tour_completed"))
	assert.False(t, srv.Exists("prefs:spacify_tour_completed"))

	_, ok, err := c.Get(ctx, "spacify_tour_completed")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_ServerError(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, time.Minute)
	srv.SetError("LOADING")

	_, ok, err := c.Get(ctx, "spacify_theme")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, "spacify_theme", "dark"))
	_, err = c.GetOffers(ctx)
	assert.Error(t, err)
}

func TestReachableKV(t *testing.T) {
	ctx := context.Background()

	t.Run("redis up", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)
		kv := ReachableKV(ctx, c, logging.Discard())
		assert.Same(t, c, kv)
	})

	t.Run("redis down", func(t *testing.T) {
		c, srv := newTestCache(t, time.Minute)
		srv.Close()

		kv := ReachableKV(ctx, c, logging.Discard())
		require.IsType(t, &MemoryKV{}, kv)
		require.NoError(t, kv.Set(ctx, "spacify_theme", "dark"))
		v, ok, err := kv.Get(ctx, "spacify_theme")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "dark", v)
	})
}

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	_, ok, err := kv.Get(ctx, "spacify_theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "spacify_theme", "dark"))
	v, ok, err := kv.Get(ctx, "spacify_theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, kv.Delete(ctx, "spacify_theme"))
	_, ok, _ = kv.Get(ctx, "spacify_theme")
	assert.False(t, ok)
}
