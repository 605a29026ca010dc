package otpcache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/freightdesk/internal/pkg/database"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

const phone = "5511987654321"

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code is consumed once", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
		s := NewMemoryStore(10*time.Minute, clock.Now)
		require.NoError(t, s.Put(ctx, models.RoleDriver, phone, "123456"))

		ok, err := s.Consume(ctx, models.RoleDriver, phone, "123456")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, _ = s.Consume(ctx, models.RoleDriver, phone, "123456")
		assert.False(t, ok)
	})

	t.Run("codes are scoped by role", func(t *testing.T) {
		s := NewMemoryStore(time.Minute, nil)
		require.NoError(t, s.Put(ctx, models.RoleDriver, phone, "111111"))

		ok, _ := s.Consume(ctx, models.RoleAdmin, phone, "111111")
		assert.False(t, ok)
	})

	t.Run("expired code is rejected", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
		s := NewMemoryStore(10*time.Minute, clock.Now)
		require.NoError(t, s.Put(ctx, models.RoleCliente, phone, "123456"))

		clock.Advance(10 * time.Minute)
		ok, err := s.Consume(ctx, models.RoleCliente, phone, "123456")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("too many wrong attempts burn the code", func(t *testing.T) {
		s := NewMemoryStore(time.Minute, nil)
		require.NoError(t, s.Put(ctx, models.RoleDriver, phone, "123456"))

		for i := 0; i < MaxAttempts; i++ {
			ok, _ := s.Consume(ctx, models.RoleDriver, phone, "000000")
			assert.False(t, ok)
		}
		ok, _ := s.Consume(ctx, models.RoleDriver, phone, "123456")
		assert.False(t, ok)
	})

	t.Run("sweep removes only expired entries", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
		s := NewMemoryStore(5*time.Minute, clock.Now)
		require.NoError(t, s.Put(ctx, models.RoleDriver, "5511900000001", "1"))
		clock.Advance(3 * time.Minute)
		require.NoError(t, s.Put(ctx, models.RoleDriver, "5511900000002", "2"))
		clock.Advance(3 * time.Minute)

		assert.Equal(t, 1, s.Sweep())
		assert.Equal(t, 1, s.Len())
	})

	t.Run("sweeper goroutine stops with the context", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
		s := NewMemoryStore(time.Minute, clock.Now)
		require.NoError(t, s.Put(ctx, models.RoleDriver, phone, "1"))
		clock.Advance(2 * time.Minute)

		sweepCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		s.StartSweeper(sweepCtx, 5*time.Millisecond)

		assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	})
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(database.NewRedisClientFrom(rdb), ttl), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code is consumed once", func(t *testing.T) {
		s, mr := newRedisStore(t, 10*time.Minute)
		require.NoError(t, s.Put(ctx, models.RoleAbastecedor, phone, "654321"))

		val, err := mr.Get("otp:abastecedor:" + phone)
		require.NoError(t, err)
		assert.Equal(t, "654321", val)
		assert.Equal(t, 10*time.Minute, mr.TTL("otp:abastecedor:"+phone))

		ok, err := s.Consume(ctx, models.RoleAbastecedor, phone, "654321")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Consume(ctx, models.RoleAbastecedor, phone, "654321")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired code is rejected", func(t *testing.T) {
		s, mr := newRedisStore(t, time.Minute)
		require.NoError(t, s.Put(ctx, models.RoleDriver, phone, "654321"))

		mr.FastForward(2 * time.Minute)
		ok, err := s.Consume(ctx, models.RoleDriver, phone, "654321")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wrong attempts are counted and burn the code", func(t *testing.T) {
		s, mr := newRedisStore(t, time.Minute)
		require.NoError(t, s.Put(ctx, models.RoleDriver, phone, "654321"))

		for i := 0; i < MaxAttempts; i++ {
			ok, err := s.Consume(ctx, models.RoleDriver, phone, "000000")
			require.NoError(t, err)
			assert.False(t, ok)
		}
		assert.False(t, mr.Exists("otp:driver:"+phone))
	})

	t.Run("leftover attempts key does not win the claim", func(t *testing.T) {
		s, mr := newRedisStore(t, time.Minute)
		require.NoError(t, mr.Set("otp:driver:"+phone+":attempts", "2"))

		ok, err := s.claim(ctx, "otp:driver:"+phone, "otp:driver:"+phone+":attempts")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("claim clears the attempts counter", func(t *testing.T) {
		s, mr := newRedisStore(t, time.Minute)
		require.NoError(t, s.Put(ctx, models.RoleDriver, phone, "654321"))

		ok, err := s.Consume(ctx, models.RoleDriver, phone, "000000")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = s.Consume(ctx, models.RoleDriver, phone, "654321")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, mr.Exists("otp:driver:"+phone))
		assert.False(t, mr.Exists("otp:driver:"+phone+":attempts"))
	})
}

func TestNew(t *testing.T) {
	s, err := New(models.OTPConfig{Store: "memory", TTL: time.Minute}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = New(models.OTPConfig{Store: "redis"}, nil)
	assert.Error(t, err)

	_, err = New(models.OTPConfig{Store: "memcached"}, nil)
	assert.Error(t, err)
}
