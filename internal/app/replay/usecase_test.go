package replay

import (
	"context"
	"testing"
	"time"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

func TestUseCase_SummarizesCurrentGame(t *testing.T) {
	repo := &fakeRepo{entries: []ports.HistoryRecord{
		{Kind: ports.HistoryKindAction, Score: -1001, OccurredAt: time.Unix(5, 0), Outcome: game.Outcome{Action: game.ActionMove, Success: true, Status: game.StatusLost}},
		{Kind: ports.HistoryKindAction, Score: -1, OccurredAt: time.Unix(4, 0), Outcome: game.Outcome{Action: game.ActionMove, Success: true, Status: game.StatusPlaying}},
		{Kind: ports.HistoryKindAction, Score: 0, OccurredAt: time.Unix(3, 0), Outcome: game.Outcome{Action: game.ActionTurn, Success: true, Status: game.StatusPlaying}},
		{Kind: ports.HistoryKindEnvironment, OccurredAt: time.Unix(2, 0), Outcome: game.Outcome{Status: game.StatusPlaying}},
		{Kind: ports.HistoryKindAction, Score: -1, OccurredAt: time.Unix(1, 0), Outcome: game.Outcome{Action: game.ActionMove, Success: true}},
	}}

	out, err := UseCase{History: repo}.Execute(context.Background(), Request{SessionID: "s1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(repo.limits) != 1 || repo.limits[0] != DefaultLimit {
		t.Fatalf("expected one read at default limit %d, got %v", DefaultLimit, repo.limits)
	}
	if len(out.Entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(out.Entries))
	}
	want := Summary{Score: -1001, Status: game.StatusLost, ActionsInGame: 3, MovesInGame: 2, DeathsRecorded: 1}
	if out.Latest != want {
		t.Fatalf("unexpected summary: %+v", out.Latest)
	}
}

func TestUseCase_FiltersByTimeWindowAndCapsLimit(t *testing.T) {
	repo := &fakeRepo{entries: []ports.HistoryRecord{
		{Kind: ports.HistoryKindAction, OccurredAt: time.Unix(30, 0)},
		{Kind: ports.HistoryKindAction, OccurredAt: time.Unix(20, 0)},
		{Kind: ports.HistoryKindAction, OccurredAt: time.Unix(10, 0)},
	}}

	out, err := UseCase{History: repo}.Execute(context.Background(), Request{SessionID: "s1", Limit: 10000, OccurredFrom: 15, OccurredTo: 25})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(repo.limits) != 1 || repo.limits[0] != MaxLimit {
		t.Fatalf("expected one read capped at %d, got %v", MaxLimit, repo.limits)
	}
	if len(out.Entries) != 1 || out.Entries[0].OccurredAt.Unix() != 20 {
		t.Fatalf("expected only the entry at t=20, got %+v", out.Entries)
	}
}

func TestUseCase_SummaryCoversWholeGameBeyondPage(t *testing.T) {
	const turns = 60
	entries := make([]ports.HistoryRecord, 0, turns+1)
	for i := turns; i >= 1; i-- {
		entries = append(entries, ports.HistoryRecord{
			Kind:       ports.HistoryKindAction,
			Score:      -i,
			OccurredAt: time.Unix(int64(100+i), 0),
			Outcome:    game.Outcome{Action: game.ActionMove, Success: true, Status: game.StatusPlaying},
		})
	}
	entries = append(entries, ports.HistoryRecord{Kind: ports.HistoryKindEnvironment, OccurredAt: time.Unix(100, 0), Outcome: game.Outcome{Status: game.StatusPlaying}})
	repo := &fakeRepo{entries: entries}

	out, err := UseCase{History: repo}.Execute(context.Background(), Request{SessionID: "s1", OccurredTo: 130})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Entries) != DefaultLimit-30 {
		t.Fatalf("expected %d entries inside the window, got %d", DefaultLimit-30, len(out.Entries))
	}
	want := Summary{Score: -turns, Status: game.StatusPlaying, ActionsInGame: turns, MovesInGame: turns}
	if out.Latest != want {
		t.Fatalf("unexpected summary: %+v", out.Latest)
	}
	if len(repo.limits) != 2 || repo.limits[0] != DefaultLimit || repo.limits[1] != 0 {
		t.Fatalf("expected a page read then a full read, got %v", repo.limits)
	}
}

func TestUseCase_FullPageWithGameStartReadsOnce(t *testing.T) {
	repo := &fakeRepo{entries: []ports.HistoryRecord{
		{Kind: ports.HistoryKindAction, Score: -1, OccurredAt: time.Unix(3, 0), Outcome: game.Outcome{Action: game.ActionMove, Success: true, Status: game.StatusPlaying}},
		{Kind: ports.HistoryKindReset, OccurredAt: time.Unix(2, 0), Outcome: game.Outcome{Status: game.StatusPlaying}},
		{Kind: ports.HistoryKindAction, OccurredAt: time.Unix(1, 0)},
	}}

	out, err := UseCase{History: repo}.Execute(context.Background(), Request{SessionID: "s1", Limit: 2})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(repo.limits) != 1 {
		t.Fatalf("expected a single read, got %v", repo.limits)
	}
	if len(out.Entries) != 2 || out.Latest.ActionsInGame != 1 || out.Latest.MovesInGame != 1 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestUseCase_EmptyHistory(t *testing.T) {
	out, err := UseCase{History: &fakeRepo{err: ports.ErrNotFound}}.Execute(context.Background(), Request{SessionID: "s1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.Entries == nil || len(out.Entries) != 0 {
		t.Fatalf("expected empty non-nil entries, got %#v", out.Entries)
	}
}

type fakeRepo struct {
	entries []ports.HistoryRecord
	err     error
	limits  []int
}

func (r *fakeRepo) Append(_ context.Context, _ string, _ []ports.HistoryRecord) error {
	return nil
}

func (r *fakeRepo) ListBySessionID(_ context.Context, _ string, limit int) ([]ports.HistoryRecord, error) {
	r.limits = append(r.limits, limit)
	if r.err != nil {
		return nil, r.err
	}
	if limit > 0 && limit < len(r.entries) {
		return r.entries[:limit], nil
	}
	return r.entries, nil
}
