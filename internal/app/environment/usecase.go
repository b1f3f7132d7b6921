package environment

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
	"wumpusworld/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid environment request")

// UseCase loads, generates and resets the environment of a session. Every
// successful call starts a fresh game on the resulting grid and forgets the
// idempotency keys of the previous one.
type UseCase struct {
	TxManager  ports.TxManager
	Sessions   ports.SessionRepository
	History    ports.HistoryRepository
	Executions ports.ActionExecutionRepository
	Locker     ports.SessionLocker
	Presets    ports.PresetProvider
	Generate   world.GenerateOptions
	Logger     *zap.Logger
	Now        func() time.Time
}

func (u UseCase) Load(ctx context.Context, req LoadRequest) (Response, error) {
	return u.mutate(ctx, req.SessionID, req.View, ports.HistoryKindEnvironment, func(s *game.Session, now time.Time) error {
		return s.Load(req.Placements, now)
	})
}

func (u UseCase) Random(ctx context.Context, req RandomRequest) (Response, error) {
	seed := rand.Uint64()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	opts := u.Generate
	if opts == (world.GenerateOptions{}) {
		opts = world.DefaultGenerateOptions()
	}

	var placements world.Placements
	resp, err := u.mutate(ctx, req.SessionID, req.View, ports.HistoryKindEnvironment, func(s *game.Session, now time.Time) error {
		size := req.Size
		if size == 0 {
			size = s.Env.Size
		}
		p, err := world.Generate(rng, size, opts)
		if err != nil {
			return err
		}
		placements = p
		return s.Load(p, now)
	})
	if err != nil {
		return Response{}, err
	}
	if req.View == game.ViewOperator {
		resp.Placements = &placements
	}
	return resp, nil
}

func (u UseCase) Preset(ctx context.Context, req PresetRequest) (Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || u.Presets == nil {
		return Response{}, ErrInvalidRequest
	}
	preset, err := u.Presets.Get(ctx, name)
	if err != nil {
		return Response{}, err
	}
	return u.Load(ctx, LoadRequest{SessionID: req.SessionID, Placements: preset.Placements, View: req.View})
}

func (u UseCase) ListPresets(ctx context.Context) (PresetsResponse, error) {
	if u.Presets == nil {
		return PresetsResponse{Presets: []ports.Preset{}}, nil
	}
	presets, err := u.Presets.List(ctx)
	if err != nil {
		return PresetsResponse{}, err
	}
	// Hazard layouts stay server-side; a listing only names the presets.
	out := make([]ports.Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, ports.Preset{Name: p.Name, Description: p.Description, Difficulty: p.Difficulty, Placements: world.Placements{Size: p.Placements.Size}})
	}
	return PresetsResponse{Presets: out}, nil
}

func (u UseCase) Reset(ctx context.Context, req ResetRequest) (Response, error) {
	return u.mutate(ctx, req.SessionID, req.View, ports.HistoryKindReset, func(s *game.Session, now time.Time) error {
		s.Reset(now)
		return nil
	})
}

func (u UseCase) mutate(ctx context.Context, sessionID string, view game.View, kind string, fn func(s *game.Session, now time.Time) error) (Response, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()
	logger := u.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if u.Locker != nil {
		unlock, err := u.Locker.Lock(ctx, sessionID)
		if err != nil {
			return Response{}, err
		}
		defer unlock()
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := u.Sessions.Get(txCtx, sessionID)
		if err != nil {
			return err
		}
		working := before.Clone()
		if err := fn(&working, now); err != nil {
			return err
		}
		working.Version = before.Version + 1
		if err := u.Sessions.SaveWithVersion(txCtx, working, before.Version); err != nil {
			return err
		}
		if u.Executions != nil {
			if err := u.Executions.DeleteBySessionID(txCtx, sessionID); err != nil {
				return err
			}
		}
		if u.History != nil {
			if err := u.History.Append(txCtx, sessionID, []ports.HistoryRecord{{
				SessionID:  sessionID,
				Kind:       kind,
				Outcome:    game.Outcome{Message: working.LastMessage, From: working.Agent.Position, To: working.Agent.Position, Status: working.Status, OccurredAt: now},
				Score:      working.Score,
				OccurredAt: now,
			}}); err != nil {
				return err
			}
		}
		out = Response{Snapshot: working.Snapshot(view)}
		return nil
	})
	if err != nil {
		logger.Info("environment change refused", zap.String("session_id", sessionID), zap.String("kind", kind), zap.Error(err))
		return Response{}, err
	}
	logger.Debug("environment changed", zap.String("session_id", sessionID), zap.String("kind", kind), zap.Int("size", out.Snapshot.Size))
	return out, nil
}
