package otpcache

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/freightdesk/internal/pkg/database"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"

	// MaxAttempts wrong guesses burn the code
	MaxAttempts = 5
)

// Store keeps one pending password-reset code per role and phone
type Store interface {
	Put(ctx context.Context, role models.Role, phone, code string) error
	// Consume reports whether code matches and deletes it on success
	Consume(ctx context.Context, role models.Role, phone, code string) (bool, error)
}

// New builds the store selected by cfg.Store. The redis client is only
// required for the redis store.
func New(cfg models.OTPConfig, redis *database.RedisClient) (Store, error) {
	switch strings.ToLower(cfg.Store) {
	case StoreRedis:
		if redis == nil {
			return nil, fmt.Errorf("redis client is required for the redis OTP store")
		}
		return NewRedisStore(redis, cfg.TTL), nil
	case StoreMemory, "":
		return NewMemoryStore(cfg.TTL, time.Now), nil
	default:
		return nil, fmt.Errorf("unknown OTP store %q", cfg.Store)
	}
}

func key(role models.Role, phone string) string {
	return string(role) + ":" + phone
}

func codesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
