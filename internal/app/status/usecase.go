package status

import (
	"context"
	"errors"
	"strings"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid status request")

// UseCase reports game statistics and the rules a session is played under.
type UseCase struct {
	Sessions ports.SessionRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	s, err := u.Sessions.Get(ctx, req.SessionID)
	if err != nil {
		return Response{}, err
	}

	left := 0
	if s.Rules.MaxActions > 0 && !s.Status.Terminal() {
		left = max(s.Rules.MaxActions-s.ActionCount, 0)
	}
	actions := make([]string, 0, len(game.SupportedActions()))
	if !s.Status.Terminal() {
		for _, a := range game.SupportedActions() {
			actions = append(actions, string(a))
		}
	}
	return Response{
		SessionID:   s.ID,
		Status:      s.Status,
		Score:       s.Score,
		Stats:       s.Stats(),
		Rules:       s.Rules,
		ActionsLeft: left,
		Actions:     actions,
	}, nil
}
