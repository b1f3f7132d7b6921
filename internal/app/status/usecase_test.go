package status

import (
	"context"
	"testing"
	"time"

	"wumpusworld/internal/domain/game"
)

func TestUseCase_ReportsStatsAndRemainingActions(t *testing.T) {
	s, err := game.NewSession("s1", 4, game.DefaultRules(), time.Unix(0, 0))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := s.Apply(game.ActionMove, "up", time.Unix(1, 0)); err != nil {
		t.Fatalf("move: %v", err)
	}

	out, err := UseCase{Sessions: fakeRepo{session: s}}.Execute(context.Background(), Request{SessionID: "s1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.Stats.ActionsMade != 1 || out.Score != -1 {
		t.Fatalf("unexpected stats: %+v score=%d", out.Stats, out.Score)
	}
	if out.ActionsLeft != 999 {
		t.Fatalf("expected 999 actions left, got %d", out.ActionsLeft)
	}
	if out.Stats.CellsVisited != 2 {
		t.Fatalf("expected 2 visited cells, got %d", out.Stats.CellsVisited)
	}
	if len(out.Actions) != len(game.SupportedActions()) {
		t.Fatalf("expected all actions available, got %v", out.Actions)
	}
}

func TestUseCase_TerminalSessionHasNoActions(t *testing.T) {
	s, err := game.NewSession("s1", 4, game.DefaultRules(), time.Unix(0, 0))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := s.Apply(game.ActionClimb, "", time.Unix(1, 0)); err != nil {
		t.Fatalf("climb: %v", err)
	}

	out, err := UseCase{Sessions: fakeRepo{session: s}}.Execute(context.Background(), Request{SessionID: "s1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.Status != game.StatusWon || !out.Stats.Won {
		t.Fatalf("expected won session, got %+v", out)
	}
	if len(out.Actions) != 0 || out.ActionsLeft != 0 {
		t.Fatalf("expected no actions on a finished game, got %v left=%d", out.Actions, out.ActionsLeft)
	}
}

func TestUseCase_RejectsEmptySessionID(t *testing.T) {
	if _, err := (UseCase{}).Execute(context.Background(), Request{}); err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

type fakeRepo struct {
	session game.Session
}

func (r fakeRepo) Get(_ context.Context, _ string) (game.Session, error) {
	return r.session, nil
}

func (r fakeRepo) SaveWithVersion(_ context.Context, _ game.Session, _ int64) error {
	return nil
}
