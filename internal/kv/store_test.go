package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// failingBackend errors on the operations it is told to fail.
type failingBackend struct {
	failGet, failSet, failDelete bool
	inner                        *MemoryBackend
}

func newFailing() *failingBackend { return &failingBackend{inner: NewMemoryBackend()} }

var errBackendDown = errors.New("backend down")

func (f *failingBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errBackendDown
	}
	return f.inner.Get(ctx, key)
}

func (f *failingBackend) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errBackendDown
	}
	return f.inner.Set(ctx, key, value)
}

func (f *failingBackend) Delete(ctx context.Context, key string) error {
	if f.failDelete {
		return errBackendDown
	}
	return f.inner.Delete(ctx, key)
}

func TestStore_PrimaryPath(t *testing.T) {
	primary := NewMemoryBackend()
	fallback := NewMemoryBackend()
	s := New(primary, fallback)
	ctx := context.Background()

	s.Set(ctx, "wagens", []map[string]interface{}{{"id": 1, "merk": "BMW"}})

	raw, _ := primary.Get(ctx, "wagens")
	require.JSONEq(t, `[{"id":1,"merk":"BMW"}]`, string(raw))
	fb, _ := fallback.Get(ctx, "wagens")
	require.Nil(t, fb, "fallback must not be touched while primary works")

	require.JSONEq(t, `[{"id":1,"merk":"BMW"}]`, string(s.Get(ctx, "wagens")))

	s.Delete(ctx, "wagens")
	require.Nil(t, s.Get(ctx, "wagens"))
}

func TestStore_RoundTripThroughPrimaryFailure(t *testing.T) {
	primary := newFailing()
	primary.failGet = true
	primary.failSet = true
	s := New(primary, NewMemoryBackend())
	ctx := context.Background()

	s.Set(ctx, "currentUser", map[string]string{"username": "jan", "role": "admin"})

	var got map[string]string
	require.True(t, s.GetJSON(ctx, "currentUser", &got))
	require.Equal(t, "jan", got["username"])
	require.Equal(t, "admin", got["role"])
}

func TestStore_GetFallsBackOnlyOnError(t *testing.T) {
	primary := newFailing()
	fallback := NewMemoryBackend()
	s := New(primary, fallback)
	ctx := context.Background()

	require.NoError(t, fallback.Set(ctx, "meldingen", []byte(`[{"id":9}]`)))

	// primary answers "absent": that is the answer, fallback is not consulted
	require.Nil(t, s.Get(ctx, "meldingen"))

	primary.failGet = true
	require.JSONEq(t, `[{"id":9}]`, string(s.Get(ctx, "meldingen")))
}

func TestStore_DeleteFallsBack(t *testing.T) {
	primary := newFailing()
	primary.failDelete = true
	fallback := NewMemoryBackend()
	s := New(primary, fallback)
	ctx := context.Background()

	require.NoError(t, fallback.Set(ctx, "currentUser", []byte(`{"username":"x"}`)))
	s.Delete(ctx, "currentUser")

	v, _ := fallback.Get(ctx, "currentUser")
	require.Nil(t, v)
}

func TestStore_BothBackendsFailingYieldsNil(t *testing.T) {
	primary := newFailing()
	primary.failGet, primary.failSet = true, true
	fallback := newFailing()
	fallback.failGet, fallback.failSet = true, true
	s := New(primary, fallback)
	ctx := context.Background()

	require.NotPanics(t, func() { s.Set(ctx, "kosten", []int{1}) })
	require.Nil(t, s.Get(ctx, "kosten"))

	var dst []int
	require.False(t, s.GetJSON(ctx, "kosten", &dst))
}

func TestStore_NilFallbackIsReplaced(t *testing.T) {
	s := New(nil, nil)
	ctx := context.Background()
	require.False(t, s.HasPrimary())

	s.Set(ctx, "k", 42)
	var n int
	require.True(t, s.GetJSON(ctx, "k", &n))
	require.Equal(t, 42, n)
}

func TestStore_GetJSONRejectsGarbage(t *testing.T) {
	fallback := NewMemoryBackend()
	s := New(nil, fallback)
	ctx := context.Background()

	require.NoError(t, fallback.Set(ctx, "wagens", []byte(`{not json`)))
	var dst []map[string]interface{}
	require.False(t, s.GetJSON(ctx, "wagens", &dst))

	require.NoError(t, fallback.Set(ctx, "wagens", []byte(`null`)))
	require.False(t, s.GetJSON(ctx, "wagens", &dst))
}
