package memory

import (
	"context"

	"wumpusworld/internal/app/ports"
)

type ActionExecutionRepo struct {
	store *Store
}

func NewActionExecutionRepo(store *Store) ActionExecutionRepo {
	return ActionExecutionRepo{store: store}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(ctx context.Context, sessionID, key string) (*ports.ActionExecutionRecord, error) {
	var (
		rec ports.ActionExecutionRecord
		ok  bool
	)
	r.store.read(ctx, func() {
		rec, ok = r.store.execution[execKey(sessionID, key)]
	})
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &rec, nil
}

func (r ActionExecutionRepo) SaveExecution(ctx context.Context, execution ports.ActionExecutionRecord) error {
	return r.store.write(ctx, func() error {
		k := execKey(execution.SessionID, execution.IdempotencyKey)
		if _, exists := r.store.execution[k]; exists {
			return ports.ErrConflict
		}
		r.store.execution[k] = execution
		return nil
	})
}

func (r ActionExecutionRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	return r.store.write(ctx, func() error {
		for k, rec := range r.store.execution {
			if rec.SessionID == sessionID {
				delete(r.store.execution, k)
			}
		}
		return nil
	})
}
