package local

import (
	"context"
	"sync"
)

// Locker serializes work per session inside one process. Entries are dropped
// once nobody holds or waits for them.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

func NewLocker() *Locker {
	return &Locker{locks: map[string]*entry{}}
}

func (l *Locker) Lock(ctx context.Context, sessionID string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[sessionID]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[sessionID] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(sessionID, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			l.release(sessionID, e)
		})
	}, nil
}

func (l *Locker) release(sessionID string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, sessionID)
	}
}

func (l *Locker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
