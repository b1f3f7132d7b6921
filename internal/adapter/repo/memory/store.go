package memory

import (
	"context"
	"maps"
	"sync"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

// Store keeps every repository's data in process. Data is lost on restart.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]game.Session
	execution   map[string]ports.ActionExecutionRecord
	history     map[string][]ports.HistoryRecord
	credentials map[string]ports.CredentialRecord
}

func NewStore() *Store {
	return &Store{
		sessions:    make(map[string]game.Session),
		execution:   make(map[string]ports.ActionExecutionRecord),
		history:     make(map[string][]ports.HistoryRecord),
		credentials: make(map[string]ports.CredentialRecord),
	}
}

func execKey(sessionID, key string) string {
	return sessionID + "::" + key
}

func (s *Store) SeedSession(session game.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
}

type txKey struct{}

// read runs fn under the read lock unless ctx already belongs to a
// transaction, which holds the write lock.
func (s *Store) read(ctx context.Context, fn func()) {
	if inTx(ctx) {
		fn()
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

func (s *Store) write(ctx context.Context, fn func() error) error {
	if inTx(ctx) {
		return fn()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

type storeState struct {
	sessions    map[string]game.Session
	execution   map[string]ports.ActionExecutionRecord
	history     map[string][]ports.HistoryRecord
	credentials map[string]ports.CredentialRecord
}

func (s *Store) save() storeState {
	history := make(map[string][]ports.HistoryRecord, len(s.history))
	for k, v := range s.history {
		history[k] = v[:len(v):len(v)]
	}
	return storeState{
		sessions:    maps.Clone(s.sessions),
		execution:   maps.Clone(s.execution),
		history:     history,
		credentials: maps.Clone(s.credentials),
	}
}

func (s *Store) restore(st storeState) {
	s.sessions = st.sessions
	s.execution = st.execution
	s.history = st.history
	s.credentials = st.credentials
}
