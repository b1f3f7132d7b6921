package replay

import (
	"context"
	"errors"
	"strings"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase lists a session's history, newest first.
type UseCase struct {
	History ports.HistoryRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	page, err := u.list(ctx, req.SessionID, limit)
	if err != nil {
		return Response{}, err
	}
	latest, err := u.summarizeCurrentGame(ctx, req.SessionID, page, limit)
	if err != nil {
		return Response{}, err
	}
	entries := filterByTimeWindow(page, req.OccurredFrom, req.OccurredTo)
	if entries == nil {
		entries = []ports.HistoryRecord{}
	}
	return Response{Entries: entries, Latest: latest}, nil
}

func (u UseCase) list(ctx context.Context, sessionID string, limit int) ([]ports.HistoryRecord, error) {
	entries, err := u.History.ListBySessionID(ctx, sessionID, limit)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return entries, nil
}

// summarizeCurrentGame reuses the page when it already reaches back to the
// start of the current game and reads the full history otherwise.
func (u UseCase) summarizeCurrentGame(ctx context.Context, sessionID string, page []ports.HistoryRecord, limit int) (Summary, error) {
	if len(page) < limit || reachesGameStart(page) {
		return summarize(page), nil
	}
	all, err := u.list(ctx, sessionID, 0)
	if err != nil {
		return Summary{}, err
	}
	return summarize(all), nil
}

func reachesGameStart(entries []ports.HistoryRecord) bool {
	for _, e := range entries {
		if e.Kind != ports.HistoryKindAction {
			return true
		}
	}
	return false
}

func filterByTimeWindow(entries []ports.HistoryRecord, from, to int64) []ports.HistoryRecord {
	if from <= 0 && to <= 0 {
		return entries
	}
	out := make([]ports.HistoryRecord, 0, len(entries))
	for _, e := range entries {
		ts := e.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, e)
	}
	return out
}

// summarize walks newest to oldest and stops at the entry that started the
// current game.
func summarize(entries []ports.HistoryRecord) Summary {
	var s Summary
	if len(entries) == 0 {
		return s
	}
	s.Score = entries[0].Score
	s.Status = entries[0].Outcome.Status
	for _, e := range entries {
		if e.Kind != ports.HistoryKindAction {
			break
		}
		s.ActionsInGame++
		if e.Outcome.Action == game.ActionMove && e.Outcome.Success {
			s.MovesInGame++
		}
		if e.Outcome.Status == game.StatusLost && e.Outcome.Action == game.ActionMove {
			s.DeathsRecorded++
		}
	}
	return s
}
