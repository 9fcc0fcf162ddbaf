// Package lock provides short-lived exclusive locks for use cases that must not run
// concurrently for the same courier.
package lock

import (
	"context"
	"log/slog"
	"time"

	"mandoob/config"
	"mandoob/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix = "mandoob:lock:"

	// releaseTimeout bounds the release call once it is detached from the caller's cancellation.
	releaseTimeout = 2 * time.Second
)

// releaseScript deletes the key only while it still holds this holder's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisLocker creates a Locker backed by SET NX with an expiry.
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) service.Locker {
	return &redisLocker{client: client, ttl: ttl}
}

// Lock acquires key or returns service.ErrLockHeld without waiting.
func (l *redisLocker) Lock(ctx context.Context, key string) (service.Unlock, error) {
	token := uuid.NewString()
	redisKey := keyPrefix + key

	acquired, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to acquire lock %s", key)
	}
	if !acquired {
		return nil, service.ErrLockHeld
	}

	// The release still runs when the caller's context is already cancelled,
	// otherwise a dropped request would keep the key until the TTL expires.
	return func(ctx context.Context) error {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
			return errors.Wrapf(err, "failed to release lock %s", key)
		}

		return nil
	}, nil
}

type noopLocker struct{}

// NewNoopLocker returns a Locker that always succeeds. Used when Redis is not configured.
func NewNoopLocker() service.Locker {
	return noopLocker{}
}

func (noopLocker) Lock(context.Context, string) (service.Unlock, error) {
	return func(context.Context) error { return nil }, nil
}

// LockerParams holds dependencies for the Locker, injected by Fx
type LockerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLocker returns a Redis-backed Locker when redis.addr is set and a no-op Locker otherwise.
func NewLocker(params LockerParams) service.Locker {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, generation lock disabled")

		return NewNoopLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, locks will error until it is reachable",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Using Redis locker", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.LockTTL))

	return NewRedisLocker(client, cfg.LockTTL)
}

// Module provides the Locker FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLocker),
)
