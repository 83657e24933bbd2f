package repository

import (
	"context"
	"sync"

	"github.com/autohandel/backoffice/internal/kv"
	"github.com/autohandel/backoffice/pkg/metrics"
)

// Ledger is an append-only collection: entries can be read and appended,
// never edited or removed.
type Ledger[T any] struct {
	mu    sync.Mutex
	store *kv.Store
	key   string
	seeds func() []T
}

func NewLedger[T any](store *kv.Store, key string, seeds func() []T) *Ledger[T] {
	return &Ledger[T]{store: store, key: key, seeds: seeds}
}

func (l *Ledger[T]) Key() string { return l.key }

// LoadAll returns the stored entries, or the seeds when the key was never
// written.
func (l *Ledger[T]) LoadAll(ctx context.Context) []T {
	var out []T
	if !l.store.GetJSON(ctx, l.key, &out) {
		if l.seeds == nil {
			return []T{}
		}
		return l.seeds()
	}
	return out
}

// Append adds entry at the end of the ledger.
func (l *Ledger[T]) Append(ctx context.Context, entry T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := append(l.LoadAll(ctx), entry)
	l.store.Set(ctx, l.key, all)
	metrics.RepositoryWrites.WithLabelValues(l.key, "append").Inc()
}
