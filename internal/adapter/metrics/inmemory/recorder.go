package inmemory

import (
	"sync"

	"wumpusworld/internal/app/ports"
)

type Snapshot struct {
	ActionTotal    uint64            `json:"action_total"`
	ActionSuccess  uint64            `json:"action_success"`
	ActionRejected uint64            `json:"action_rejected"`
	ActionConflict uint64            `json:"action_conflict"`
	ActionFailure  uint64            `json:"action_failure"`
	GamesWon       uint64            `json:"games_won"`
	GamesLost      uint64            `json:"games_lost"`
	ByResultCode   map[string]uint64 `json:"by_result_code"`
}

// Recorder counts action outcomes across all sessions.
type Recorder struct {
	mu       sync.Mutex
	success  uint64
	rejected uint64
	conflict uint64
	failure  uint64
	byResult map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byResult: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(resultCode ports.ResultCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byResult[string(resultCode)]++
}

func (r *Recorder) RecordRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess:  r.success,
		ActionRejected: r.rejected,
		ActionConflict: r.conflict,
		ActionFailure:  r.failure,
		ActionTotal:    r.success + r.rejected + r.conflict + r.failure,
		GamesWon:       r.byResult[string(ports.ResultWon)],
		GamesLost:      r.byResult[string(ports.ResultLost)],
		ByResultCode:   make(map[string]uint64, len(r.byResult)),
	}
	for k, v := range r.byResult {
		out.ByResultCode[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
