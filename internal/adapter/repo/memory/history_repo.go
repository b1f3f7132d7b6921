package memory

import (
	"context"

	"wumpusworld/internal/app/ports"
)

type HistoryRepo struct {
	store *Store
}

func NewHistoryRepo(store *Store) HistoryRepo {
	return HistoryRepo{store: store}
}

func (r HistoryRepo) Append(ctx context.Context, sessionID string, records []ports.HistoryRecord) error {
	return r.store.write(ctx, func() error {
		r.store.history[sessionID] = append(r.store.history[sessionID], records...)
		return nil
	})
}

// ListBySessionID returns up to limit records, newest first. A limit of zero
// or less returns everything.
func (r HistoryRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]ports.HistoryRecord, error) {
	var out []ports.HistoryRecord
	r.store.read(ctx, func() {
		all := r.store.history[sessionID]
		n := len(all)
		if limit > 0 && limit < n {
			n = limit
		}
		out = make([]ports.HistoryRecord, 0, n)
		for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, all[i])
		}
	})
	return out, nil
}
