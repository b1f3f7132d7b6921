package memory

import (
	"context"

	"wumpusworld/internal/app/ports"
)

type CredentialRepo struct {
	store *Store
}

func NewCredentialRepo(store *Store) CredentialRepo {
	return CredentialRepo{store: store}
}

func (r CredentialRepo) Create(ctx context.Context, credential ports.CredentialRecord) error {
	return r.store.write(ctx, func() error {
		if _, exists := r.store.credentials[credential.SessionID]; exists {
			return ports.ErrConflict
		}
		r.store.credentials[credential.SessionID] = credential
		return nil
	})
}

func (r CredentialRepo) GetBySessionID(ctx context.Context, sessionID string) (ports.CredentialRecord, error) {
	var (
		cred ports.CredentialRecord
		ok   bool
	)
	r.store.read(ctx, func() {
		cred, ok = r.store.credentials[sessionID]
	})
	if !ok {
		return ports.CredentialRecord{}, ports.ErrNotFound
	}
	return cred, nil
}
