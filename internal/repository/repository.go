package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/autohandel/backoffice/internal/kv"
	"github.com/autohandel/backoffice/pkg/metrics"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Record is the constraint every stored entity satisfies through its pointer type.
type Record[T any] interface {
	*T
	RecordID() int64
	AssignID(id int64)
}

// Repository keeps one collection as a single JSON array under a fixed key.
// Every write loads the whole array, mutates it in memory and writes it back.
// The mutex only serialises writers inside this process; two processes
// sharing a backend still race with last-write-wins on the whole array.
type Repository[T any, P Record[T]] struct {
	mu    sync.Mutex
	store *kv.Store
	key   string
	seeds func() []T
	ids   *IDGenerator
}

// New creates a repository for key. seeds returns a fresh copy of the
// built-in records shown while the collection is empty; it may be nil.
// A nil ids uses the process-wide generator.
func New[T any, P Record[T]](store *kv.Store, key string, seeds func() []T, ids *IDGenerator) *Repository[T, P] {
	if ids == nil {
		ids = defaultIDs
	}
	return &Repository[T, P]{store: store, key: key, seeds: seeds, ids: ids}
}

// Key returns the storage key of the collection.
func (r *Repository[T, P]) Key() string { return r.key }

// LoadAll returns the stored records, or the seed list when the key was
// never written. A stored empty array stays empty, so removing the last
// record does not bring the seeds back. Seeds are not persisted by loading.
func (r *Repository[T, P]) LoadAll(ctx context.Context) []T {
	var out []T
	if !r.store.GetJSON(ctx, r.key, &out) {
		if r.seeds == nil {
			return []T{}
		}
		return r.seeds()
	}
	return out
}

// SaveAll overwrites the whole collection.
func (r *Repository[T, P]) SaveAll(ctx context.Context, records []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.save(ctx, "save_all", records)
}

func (r *Repository[T, P]) save(ctx context.Context, op string, records []T) {
	if records == nil {
		records = []T{}
	}
	r.store.Set(ctx, r.key, records)
	metrics.RepositoryWrites.WithLabelValues(r.key, op).Inc()
}

// Get returns the record with id.
func (r *Repository[T, P]) Get(ctx context.Context, id int64) (T, error) {
	for _, rec := range r.LoadAll(ctx) {
		if P(&rec).RecordID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Create appends rec under a freshly generated id and returns the stored record.
func (r *Repository[T, P]) Create(ctx context.Context, rec T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.LoadAll(ctx)
	var highest int64
	for i := range all {
		if id := P(&all[i]).RecordID(); id > highest {
			highest = id
		}
	}
	P(&rec).AssignID(r.ids.Next(highest))
	all = append(all, rec)
	r.save(ctx, "create", all)
	return rec
}

// Update applies mutate to the first record with id and saves the collection.
// The id survives whatever mutate does. When no record matches nothing is
// written and ok is false.
func (r *Repository[T, P]) Update(ctx context.Context, id int64, mutate func(*T)) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.LoadAll(ctx)
	for i := range all {
		if P(&all[i]).RecordID() != id {
			continue
		}
		mutate(&all[i])
		P(&all[i]).AssignID(id)
		r.save(ctx, "update", all)
		return all[i], true
	}
	var zero T
	return zero, false
}

// UpdateWhere applies mutate to every record match accepts and saves the
// collection once. It returns the number of records changed; when that is
// zero nothing is written.
func (r *Repository[T, P]) UpdateWhere(ctx context.Context, match func(T) bool, mutate func(*T)) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.LoadAll(ctx)
	n := 0
	for i := range all {
		if !match(all[i]) {
			continue
		}
		id := P(&all[i]).RecordID()
		mutate(&all[i])
		P(&all[i]).AssignID(id)
		n++
	}
	if n > 0 {
		r.save(ctx, "update", all)
	}
	return n
}

// Remove filters out every record with id. Nothing is written when the id
// is absent.
func (r *Repository[T, P]) Remove(ctx context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.LoadAll(ctx)
	kept := make([]T, 0, len(all))
	for i := range all {
		if P(&all[i]).RecordID() != id {
			kept = append(kept, all[i])
		}
	}
	if len(kept) == len(all) {
		return false
	}
	r.save(ctx, "remove", kept)
	return true
}
