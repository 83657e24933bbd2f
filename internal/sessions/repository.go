package sessions

import (
	"context"

	"github.com/autohandel/backoffice/internal/kv"
)

// StorageKey is where the active session is persisted.
const StorageKey = "currentUser"

// Repository provides session persistence operations
type Repository interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context) (*Session, error)
	Delete(ctx context.Context) error
}

// KVRepository keeps the session under StorageKey in the shared store.
// The store never reports errors, so neither does this repository.
type KVRepository struct {
	store *kv.Store
}

func NewKVRepository(store *kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Save(ctx context.Context, s *Session) error {
	r.store.Set(ctx, StorageKey, s)
	return nil
}

func (r *KVRepository) Load(ctx context.Context) (*Session, error) {
	var s Session
	if !r.store.GetJSON(ctx, StorageKey, &s) {
		return nil, nil
	}
	return &s, nil
}

func (r *KVRepository) Delete(ctx context.Context) error {
	r.store.Delete(ctx, StorageKey)
	return nil
}
