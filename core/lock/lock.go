package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLocked is returned when another holder owns the lock.
var ErrLocked = errors.New("lock already held")

// Unlock releases a held lock.
type Unlock func(ctx context.Context) error

// Locker grants exclusive, expiring locks by key.
type Locker interface {
	// Lock acquires key for at most ttl. It fails with ErrLocked if the key is held.
	Lock(ctx context.Context, key string, ttl time.Duration) (Unlock, error)
}

// redisClient is the subset of *redis.Client the locker uses.
type redisClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

// releaseScript deletes the key only while it still carries our token, so an
// expired lock taken over by another process is never released by us.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// RedisLocker implements Locker with SET NX PX.
type RedisLocker struct {
	client redisClient
}

// NewRedisLocker creates a locker on the given redis client.
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

// Lock implements Locker.
func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (Unlock, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrLocked)
	}

	return func(ctx context.Context) error {
		if err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}, nil
}

// NoopLocker always grants the lock. It is used when no redis is configured.
type NoopLocker struct{}

// Lock implements Locker.
func (NoopLocker) Lock(ctx context.Context, key string, ttl time.Duration) (Unlock, error) {
	return func(context.Context) error { return nil }, nil
}

// Config holds configuration for the redis connection.
type Config struct {
	// Addr is host:port of the redis server. Empty disables distributed locking.
	Addr string `mapstructure:"addr" default:""`
	// Password is the redis password.
	Password string `mapstructure:"password" default:""`
	// DB selects the redis database.
	DB int `mapstructure:"db" default:"0"`
}

// New returns a RedisLocker when cfg.Addr is set and a NoopLocker otherwise.
// The returned close function releases the redis connection pool.
func New(cfg Config) (Locker, func() error) {
	if cfg.Addr == "" {
		return NoopLocker{}, func() error { return nil }
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return NewRedisLocker(client), client.Close
}
