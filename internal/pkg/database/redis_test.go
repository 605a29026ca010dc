package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisClientFrom(client), mr
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(models.RedisConfig{
		Host:     mr.Host(),
		Port:     mustPort(t, mr.Port()),
		PoolSize: 2,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	port := mustPort(t, mr.Port())
	mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: port})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	client, mr := newMiniRedisClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "otp:driver:5511987654321", "123456", time.Minute))

	val, err := client.Get(ctx, "otp:driver:5511987654321")
	require.NoError(t, err)
	assert.Equal(t, "123456", val)

	mr.FastForward(2 * time.Minute)
	_, err = client.Get(ctx, "otp:driver:5511987654321")
	assert.ErrorIs(t, err, redis.Nil)

	require.NoError(t, client.Set(ctx, "k", "v", 0))
	require.NoError(t, client.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
}

func mustPort(t *testing.T, s string) int {
	t.Helper()
	p, err := strconv.Atoi(s)
	require.NoError(t, err)
	return p
}
