package observe

import (
	"context"
	"errors"
	"strings"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid observe request")

// UseCase reads a session snapshot without changing it.
type UseCase struct {
	Sessions ports.SessionRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	view := req.View
	if view == "" {
		view = game.ViewPlayer
	}
	session, err := u.Sessions.Get(ctx, req.SessionID)
	if err != nil {
		return Response{}, err
	}
	return Response{Snapshot: session.Snapshot(view)}, nil
}
