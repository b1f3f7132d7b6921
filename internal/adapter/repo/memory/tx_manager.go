package memory

import "context"

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// RunInTx serializes transactions on the store and discards every write made
// by fn when it returns an error.
func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	saved := t.store.save()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		t.store.restore(saved)
		return err
	}
	return nil
}
