package redislock

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix     = "wumpus:session:"
	defaultExpiry = 10 * time.Second
)

// Locker serializes work per session across server instances with a redsync
// mutex keyed by session id.
type Locker struct {
	rs     *redsync.Redsync
	expiry time.Duration
	logger *zap.Logger
}

func NewLocker(client *redis.Client, expiry time.Duration, logger *zap.Logger) *Locker {
	if expiry <= 0 {
		expiry = defaultExpiry
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
		logger: logger,
	}
}

func (l *Locker) Lock(ctx context.Context, sessionID string) (func(), error) {
	mutex := l.rs.NewMutex(keyPrefix+sessionID+":lock",
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(64),
		redsync.WithRetryDelay(25*time.Millisecond),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		if _, err := mutex.Unlock(); err != nil {
			l.logger.Warn("session unlock failed", zap.String("session_id", sessionID), zap.Error(err))
		}
	}, nil
}

// NewClient opens a go-redis client and checks it answers.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
