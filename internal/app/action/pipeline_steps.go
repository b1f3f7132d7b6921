package action

import (
	"context"
	"errors"
	"strings"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

func (u UseCase) ValidateRequest(req Request) (actionContext, error) {
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	req.Action = game.ActionName(strings.ToLower(strings.TrimSpace(string(req.Action))))
	req.Direction = strings.ToLower(strings.TrimSpace(req.Direction))
	if req.View == "" {
		req.View = game.ViewPlayer
	}
	if req.SessionID == "" || req.Action == "" {
		return actionContext{}, ErrInvalidRequest
	}
	return actionContext{req: req}, nil
}

// ReplayIdempotent returns the stored result for a repeated key, narrowed to
// the caller's view. Keys are forgotten whenever the environment changes.
func (u UseCase) ReplayIdempotent(ctx context.Context, ac *actionContext) (Response, bool, error) {
	if ac.req.IdempotencyKey == "" || u.ActionRepo == nil {
		return Response{}, false, nil
	}
	exec, err := u.ActionRepo.GetByIdempotencyKey(ctx, ac.req.SessionID, ac.req.IdempotencyKey)
	if err == nil && exec != nil {
		return Response{
			Outcome:    exec.Result.Outcome,
			Snapshot:   exec.Result.Snapshot.As(ac.req.View),
			ResultCode: resultCodeFor(exec.Result.Outcome),
			Replayed:   true,
		}, true, nil
	}
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return Response{}, false, err
	}
	return Response{}, false, nil
}

func (u UseCase) LoadSession(ctx context.Context, ac *actionContext) error {
	session, err := u.Sessions.Get(ctx, ac.req.SessionID)
	if err != nil {
		return err
	}
	ac.before = session
	ac.working = session.Clone()
	return nil
}

func (u UseCase) ApplyAction(ac *actionContext) error {
	outcome, err := ac.working.Apply(ac.req.Action, ac.req.Direction, ac.nowAt)
	if err != nil {
		return &RejectedError{Err: err, Snapshot: ac.before.Snapshot(ac.req.View)}
	}
	ac.outcome = outcome
	return nil
}

func (u UseCase) Persist(ctx context.Context, ac *actionContext) error {
	ac.working.Version = ac.before.Version + 1
	if err := u.Sessions.SaveWithVersion(ctx, ac.working, ac.before.Version); err != nil {
		return err
	}

	if u.History != nil {
		if err := u.History.Append(ctx, ac.req.SessionID, []ports.HistoryRecord{{
			SessionID:  ac.req.SessionID,
			Kind:       ports.HistoryKindAction,
			Outcome:    ac.outcome,
			Score:      ac.working.Score,
			OccurredAt: ac.nowAt,
		}}); err != nil {
			return err
		}
	}

	ac.out = Response{
		Outcome:    ac.outcome,
		Snapshot:   ac.working.Snapshot(ac.req.View),
		ResultCode: resultCodeFor(ac.outcome),
	}

	if ac.req.IdempotencyKey != "" && u.ActionRepo != nil {
		if err := u.ActionRepo.SaveExecution(ctx, ports.ActionExecutionRecord{
			SessionID:      ac.req.SessionID,
			IdempotencyKey: ac.req.IdempotencyKey,
			Action:         string(ac.req.Action),
			Direction:      ac.req.Direction,
			Result: ports.ActionResult{
				Outcome:  ac.outcome,
				Snapshot: ac.working.Snapshot(game.ViewOperator),
			},
			AppliedAt: ac.nowAt,
		}); err != nil {
			return err
		}
	}
	return nil
}
