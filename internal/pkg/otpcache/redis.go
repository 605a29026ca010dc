package otpcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/database"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

// RedisStore keeps codes under otp:{role}:{phone} with a TTL
type RedisStore struct {
	client *database.RedisClient
	ttl    time.Duration
}

// NewRedisStore creates a redis backed store
func NewRedisStore(client *database.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Put replaces any pending code and resets the attempt counter
func (s *RedisStore) Put(ctx context.Context, role models.Role, phone, code string) error {
	codeKey := fmt.Sprintf(constants.KeyPasswordResetOTP, role, phone)
	attemptsKey := fmt.Sprintf(constants.KeyPasswordResetAttempts, role, phone)

	_, err := s.client.GetClient().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, codeKey, code, s.ttl)
		pipe.Del(ctx, attemptsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// Consume checks code against the pending one
func (s *RedisStore) Consume(ctx context.Context, role models.Role, phone, code string) (bool, error) {
	codeKey := fmt.Sprintf(constants.KeyPasswordResetOTP, role, phone)
	attemptsKey := fmt.Sprintf(constants.KeyPasswordResetAttempts, role, phone)

	stored, err := s.client.Get(ctx, codeKey)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read OTP: %w", err)
	}

	if !codesEqual(stored, code) {
		rdb := s.client.GetClient()
		attempts, err := rdb.Incr(ctx, attemptsKey).Result()
		if err != nil {
			return false, fmt.Errorf("failed to count OTP attempts: %w", err)
		}
		rdb.Expire(ctx, attemptsKey, s.ttl)
		if attempts >= MaxAttempts {
			if err := rdb.Del(ctx, codeKey, attemptsKey).Err(); err != nil {
				return false, fmt.Errorf("failed to burn OTP: %w", err)
			}
		}
		return false, nil
	}

	return s.claim(ctx, codeKey, attemptsKey)
}

// claim deletes the code key; only the caller whose DEL removed it wins
func (s *RedisStore) claim(ctx context.Context, codeKey, attemptsKey string) (bool, error) {
	rdb := s.client.GetClient()
	deleted, err := rdb.Del(ctx, codeKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}
	if deleted == 0 {
		return false, nil
	}
	rdb.Del(ctx, attemptsKey)
	return true, nil
}
