package inmemory

import (
	"sync"
	"testing"

	"wumpusworld/internal/app/ports"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(ports.ResultOK)
	r.RecordSuccess(ports.ResultLost)
	r.RecordRejected()
	r.RecordConflict()
	r.RecordFailure()

	s := r.Snapshot()
	if s.ActionTotal != 5 {
		t.Fatalf("expected total 5, got %d", s.ActionTotal)
	}
	if s.ActionSuccess != 2 {
		t.Fatalf("expected success 2, got %d", s.ActionSuccess)
	}
	if s.ActionRejected != 1 {
		t.Fatalf("expected rejected 1, got %d", s.ActionRejected)
	}
	if s.ActionConflict != 1 {
		t.Fatalf("expected conflict 1, got %d", s.ActionConflict)
	}
	if s.ActionFailure != 1 {
		t.Fatalf("expected failure 1, got %d", s.ActionFailure)
	}
	if s.GamesLost != 1 || s.GamesWon != 0 {
		t.Fatalf("expected one lost game, got won=%d lost=%d", s.GamesWon, s.GamesLost)
	}
	if s.ByResultCode[string(ports.ResultOK)] != 1 {
		t.Fatalf("expected result ok count 1")
	}
}

func TestRecorderSnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(ports.ResultWon)

	s := r.Snapshot()
	s.ByResultCode[string(ports.ResultWon)] = 99
	if got := r.Snapshot().ByResultCode[string(ports.ResultWon)]; got != 1 {
		t.Fatalf("expected recorder unaffected by snapshot edits, got %d", got)
	}
}

func TestRecorderConcurrentUse(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.RecordSuccess(ports.ResultNoop)
		}()
	}
	wg.Wait()
	if got := r.Snapshot().ByResultCode[string(ports.ResultNoop)]; got != 50 {
		t.Fatalf("expected 50 noop results, got %d", got)
	}
}
