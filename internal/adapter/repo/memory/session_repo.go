package memory

import (
	"context"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/game"
)

type SessionRepo struct {
	store *Store
}

func NewSessionRepo(store *Store) SessionRepo {
	return SessionRepo{store: store}
}

func (r SessionRepo) Get(ctx context.Context, sessionID string) (game.Session, error) {
	var (
		s  game.Session
		ok bool
	)
	r.store.read(ctx, func() {
		s, ok = r.store.sessions[sessionID]
	})
	if !ok {
		return game.Session{}, ports.ErrNotFound
	}
	return s.Clone(), nil
}

func (r SessionRepo) SaveWithVersion(ctx context.Context, session game.Session, expectedVersion int64) error {
	return r.store.write(ctx, func() error {
		current, ok := r.store.sessions[session.ID]
		if !ok {
			if expectedVersion != 0 {
				return ports.ErrConflict
			}
			r.store.sessions[session.ID] = session.Clone()
			return nil
		}
		if current.Version != expectedVersion {
			return ports.ErrConflict
		}
		r.store.sessions[session.ID] = session.Clone()
		return nil
	})
}
