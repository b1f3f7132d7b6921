package action

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

// UseCase applies one action to a session. Work on a session is serialized by
// Locker; the load, apply and save run inside one transaction and the save is
// guarded by the session version.
type UseCase struct {
	TxManager  ports.TxManager
	Sessions   ports.SessionRepository
	ActionRepo ports.ActionExecutionRepository
	History    ports.HistoryRepository
	Locker     ports.SessionLocker
	Metrics    ports.ActionMetrics
	Logger     *zap.Logger
	Now        func() time.Time
}

type actionContext struct {
	req     Request
	nowAt   time.Time
	before  game.Session
	working game.Session
	outcome game.Outcome
	out     Response
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	ac, err := u.ValidateRequest(req)
	if err != nil {
		return Response{}, err
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	ac.nowAt = nowFn().UTC()

	if u.Locker != nil {
		unlock, err := u.Locker.Lock(ctx, ac.req.SessionID)
		if err != nil {
			return Response{}, err
		}
		defer unlock()
	}

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		replay, ok, err := u.ReplayIdempotent(txCtx, &ac)
		if err != nil {
			return err
		}
		if ok {
			ac.out = replay
			return nil
		}
		if err := u.LoadSession(txCtx, &ac); err != nil {
			return err
		}
		if err := u.ApplyAction(&ac); err != nil {
			return err
		}
		return u.Persist(txCtx, &ac)
	})
	u.record(ac, err)
	if err != nil {
		return Response{}, err
	}
	return ac.out, nil
}

func (u UseCase) record(ac actionContext, err error) {
	logger := u.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fields := []zap.Field{
		zap.String("session_id", ac.req.SessionID),
		zap.String("action", string(ac.req.Action)),
		zap.String("direction", ac.req.Direction),
	}

	var rejected *RejectedError
	switch {
	case err == nil:
		logger.Debug("action applied", append(fields,
			zap.String("result_code", string(ac.out.ResultCode)),
			zap.Int("score", ac.out.Snapshot.Score),
			zap.String("status", string(ac.out.Snapshot.Status)),
		)...)
		if u.Metrics != nil {
			u.Metrics.RecordSuccess(ac.out.ResultCode)
		}
	case errors.As(err, &rejected):
		logger.Debug("action rejected", append(fields, zap.Error(err))...)
		if u.Metrics != nil {
			u.Metrics.RecordRejected()
		}
	case errors.Is(err, ports.ErrConflict):
		logger.Warn("action version conflict", fields...)
		if u.Metrics != nil {
			u.Metrics.RecordConflict()
		}
	default:
		logger.Error("action failed", append(fields, zap.Error(err))...)
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
	}
}

func resultCodeFor(out game.Outcome) ports.ResultCode {
	switch {
	case out.Status == game.StatusWon:
		return ports.ResultWon
	case out.Status == game.StatusLost:
		return ports.ResultLost
	case !out.Success:
		return ports.ResultNoop
	default:
		return ports.ResultOK
	}
}
