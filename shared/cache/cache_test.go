package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"basera/infras/otel/mocks"
	"basera/shared/cache"
)

func newTestCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		ID    string `json:"id"`
		Total int    `json:"total"`
	}

	assert.NoError(t, c.Save(ctx, "room:get:test-id", payload{ID: "test-id", Total: 3}, 60))

	var got payload
	assert.NoError(t, c.Get(ctx, "room:get:test-id", &got))
	assert.Equal(t, "test-id", got.ID)
	assert.Equal(t, 3, got.Total)
}

func TestRedisCache_SaveAndGetString(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "greeting", "hello", 60))

	var got string
	assert.NoError(t, c.Get(ctx, "greeting", &got))
	assert.Equal(t, "hello", got)
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var got string
	err := c.Get(context.Background(), "missing-key", &got)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "room:get:test-id", "value", 60))
	assert.NoError(t, c.Delete(ctx, "room:get:test-id"))

	var got string
	assert.Error(t, c.Get(ctx, "room:get:test-id", &got))
}

func TestRedisCache_Clear(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "room:get_all:aaa", "one", 60))
	assert.NoError(t, c.Save(ctx, "room:get_all:bbb", "two", 60))
	assert.NoError(t, c.Save(ctx, "booking:get_all:ccc", "three", 60))

	assert.NoError(t, c.Clear(ctx, "room:get_all*"))

	var got string
	assert.Error(t, c.Get(ctx, "room:get_all:aaa", &got))
	assert.Error(t, c.Get(ctx, "room:get_all:bbb", &got))
	assert.NoError(t, c.Get(ctx, "booking:get_all:ccc", &got), "other prefixes survive a clear")
}
