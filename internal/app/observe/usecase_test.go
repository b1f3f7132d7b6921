package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
	"wumpusworld/internal/domain/world"
)

func TestUseCase_PlayerViewHidesUnvisitedHazards(t *testing.T) {
	s := loadedSession(t)
	uc := UseCase{Sessions: fakeRepo{session: s}}

	out, err := uc.Execute(context.Background(), Request{SessionID: "s1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.Snapshot.View != game.ViewPlayer {
		t.Fatalf("expected player view by default, got %q", out.Snapshot.View)
	}
	pit := out.Snapshot.Grid[0][3]
	if pit.Visible || pit.Pit {
		t.Fatalf("expected pit at (3,0) hidden, got %+v", pit)
	}
	start := out.Snapshot.Grid[3][0]
	if !start.Visible || !start.Agent {
		t.Fatalf("expected agent visible on start cell, got %+v", start)
	}
}

func TestUseCase_OperatorViewRevealsAll(t *testing.T) {
	s := loadedSession(t)
	uc := UseCase{Sessions: fakeRepo{session: s}}

	out, err := uc.Execute(context.Background(), Request{SessionID: "s1", View: game.ViewOperator})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !out.Snapshot.Grid[0][3].Pit {
		t.Fatalf("expected operator to see pit at (3,0)")
	}
}

func TestUseCase_RejectsEmptySessionID(t *testing.T) {
	uc := UseCase{Sessions: fakeRepo{}}
	if _, err := uc.Execute(context.Background(), Request{SessionID: " "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_PropagatesNotFound(t *testing.T) {
	uc := UseCase{Sessions: fakeRepo{err: ports.ErrNotFound}}
	if _, err := uc.Execute(context.Background(), Request{SessionID: "missing"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func loadedSession(t *testing.T) game.Session {
	t.Helper()
	s, err := game.NewSession("s1", 4, game.DefaultRules(), time.Unix(0, 0))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.Load(world.Placements{Pits: []world.Coord{{X: 3, Y: 0}}}, time.Unix(0, 0)); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

type fakeRepo struct {
	session game.Session
	err     error
}

func (r fakeRepo) Get(_ context.Context, _ string) (game.Session, error) {
	if r.err != nil {
		return game.Session{}, r.err
	}
	return r.session, nil
}

func (r fakeRepo) SaveWithVersion(_ context.Context, _ game.Session, _ int64) error {
	return nil
}
