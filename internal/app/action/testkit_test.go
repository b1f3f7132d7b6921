package action

import (
	"context"
	"sync"
	"testing"
	"time"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
	"wumpusworld/internal/domain/world"
)

var testNow = time.Unix(1700000000, 0).UTC()

type stubSessionRepo struct {
	byID     map[string]game.Session
	saves    int
	conflict bool
}

func (r *stubSessionRepo) Get(_ context.Context, sessionID string) (game.Session, error) {
	s, ok := r.byID[sessionID]
	if !ok {
		return game.Session{}, ports.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *stubSessionRepo) SaveWithVersion(_ context.Context, s game.Session, expectedVersion int64) error {
	if r.conflict || r.byID[s.ID].Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byID[s.ID] = s.Clone()
	r.saves++
	return nil
}

type stubActionRepo struct {
	byKey map[string]ports.ActionExecutionRecord
}

func (r *stubActionRepo) GetByIdempotencyKey(_ context.Context, sessionID, key string) (*ports.ActionExecutionRecord, error) {
	rec, ok := r.byKey[sessionID+"::"+key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &rec, nil
}

func (r *stubActionRepo) SaveExecution(_ context.Context, rec ports.ActionExecutionRecord) error {
	if r.byKey == nil {
		r.byKey = map[string]ports.ActionExecutionRecord{}
	}
	r.byKey[rec.SessionID+"::"+rec.IdempotencyKey] = rec
	return nil
}

func (r *stubActionRepo) DeleteBySessionID(_ context.Context, sessionID string) error {
	for k, rec := range r.byKey {
		if rec.SessionID == sessionID {
			delete(r.byKey, k)
		}
	}
	return nil
}

type stubHistoryRepo struct {
	records []ports.HistoryRecord
}

func (r *stubHistoryRepo) Append(_ context.Context, _ string, records []ports.HistoryRecord) error {
	r.records = append(r.records, records...)
	return nil
}

func (r *stubHistoryRepo) ListBySessionID(_ context.Context, _ string, _ int) ([]ports.HistoryRecord, error) {
	return r.records, nil
}

type stubMetrics struct {
	success  map[ports.ResultCode]int
	rejected int
	conflict int
	failure  int
}

func (m *stubMetrics) RecordSuccess(code ports.ResultCode) {
	if m.success == nil {
		m.success = map[ports.ResultCode]int{}
	}
	m.success[code]++
}
func (m *stubMetrics) RecordRejected() { m.rejected++ }
func (m *stubMetrics) RecordConflict() { m.conflict++ }
func (m *stubMetrics) RecordFailure()  { m.failure++ }

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type countingLocker struct {
	mu      sync.Mutex
	locks   int
	unlocks int
}

func (l *countingLocker) Lock(_ context.Context, _ string) (func(), error) {
	l.mu.Lock()
	l.locks++
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		l.unlocks++
		l.mu.Unlock()
	}, nil
}

type fixture struct {
	uc       UseCase
	sessions *stubSessionRepo
	actions  *stubActionRepo
	history  *stubHistoryRepo
	metrics  *stubMetrics
	locker   *countingLocker
}

// newFixture seeds session "s1" on a 4x4 grid loaded with p.
func newFixture(t *testing.T, p world.Placements) fixture {
	t.Helper()
	s, err := game.NewSession("s1", 4, game.DefaultRules(), testNow)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if !p.Empty() {
		if err := s.Load(p, testNow); err != nil {
			t.Fatalf("load placements: %v", err)
		}
	}
	s.Version = 1

	f := fixture{
		sessions: &stubSessionRepo{byID: map[string]game.Session{"s1": s}},
		actions:  &stubActionRepo{},
		history:  &stubHistoryRepo{},
		metrics:  &stubMetrics{},
		locker:   &countingLocker{},
	}
	f.uc = UseCase{
		TxManager:  stubTxManager{},
		Sessions:   f.sessions,
		ActionRepo: f.actions,
		History:    f.history,
		Locker:     f.locker,
		Metrics:    f.metrics,
		Now:        func() time.Time { return testNow },
	}
	return f
}

func coord(x, y int) *world.Coord {
	return &world.Coord{X: x, Y: y}
}
