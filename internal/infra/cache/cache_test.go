package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisCache_Unreachable(t *testing.T) {
	_, err := NewRedisCache(context.Background(), Options{
		Addr:        "127.0.0.1:1",
		PingTimeout: 200 * time.Millisecond,
	})
	assert.ErrorIs(t, err, ErrConnect)
}

func TestRedisCache_KeyPrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	assert.Equal(t, "restaurant:home", NewRedisCacheWithClient(client, "restaurant").key("home"))
	assert.Equal(t, "home", NewRedisCacheWithClient(client, "").key("home"))
}

func TestRedisCache_BackendError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	c := NewRedisCacheWithClient(client, "test")
	defer c.Close()

	var dest map[string]string
	found, err := c.Get(context.Background(), "home", &dest)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrBackend)

	assert.ErrorIs(t, c.Set(context.Background(), "home", map[string]string{"a": "b"}, time.Minute), ErrBackend)
	assert.NoError(t, c.Delete(context.Background()))
}

func TestRedisCache_EncodeError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	c := NewRedisCacheWithClient(client, "test")
	defer c.Close()

	err := c.Set(context.Background(), "bad", make(chan int), time.Minute)
	assert.ErrorIs(t, err, ErrEncode)
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	var dest string

	found, err := c.Get(context.Background(), "k", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(context.Background(), "k", "v", time.Second))
	assert.NoError(t, c.Delete(context.Background(), "k"))
}
