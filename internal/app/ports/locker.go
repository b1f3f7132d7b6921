package ports

import "context"

// SessionLocker serializes work on one session. Different sessions never
// contend. The returned function releases the lock.
type SessionLocker interface {
	Lock(ctx context.Context, sessionID string) (unlock func(), err error)
}
