package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultLockout     = 15 * time.Minute
)

// LoginLimiter counts consecutive failed logins per username.
// Key format: login:fail:<username>
type LoginLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	lockout     time.Duration
}

// NewLoginLimiter blocks a username after maxAttempts failures until lockout
// has passed since the first of them.
func NewLoginLimiter(client redis.Cmdable, maxAttempts int, lockout time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if lockout <= 0 {
		lockout = defaultLockout
	}
	return &LoginLimiter{client: client, maxAttempts: int64(maxAttempts), lockout: lockout}
}

func (l *LoginLimiter) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// RecordFailure increments the counter; the window starts at the first failure.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.lockout)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login limiter record: %w", err)
	}
	return nil
}

func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	if err := l.client.Del(ctx, l.key(username)).Err(); err != nil {
		return fmt.Errorf("login limiter reset: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(username string) string {
	return "login:fail:" + strings.ToLower(username)
}
