package kv

import (
	"context"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisBackend_SetGetDelete(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	b := NewRedisBackend(client, "test:")
	ctx := context.Background()

	got, err := b.Get(ctx, "wagens")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, b.Set(ctx, "wagens", []byte(`[{"id":1}]`)))
	raw, err := m.Get("test:wagens")
	require.NoError(t, err)
	require.Equal(t, `[{"id":1}]`, raw)
	require.Zero(t, m.TTL("test:wagens"), "values are stored without expiry")

	got, err = b.Get(ctx, "wagens")
	require.NoError(t, err)
	require.Equal(t, `[{"id":1}]`, string(got))

	require.NoError(t, b.Delete(ctx, "wagens"))
	got, err = b.Get(ctx, "wagens")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_RedisOutageFallsBackToLocal(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	local, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer local.Close()

	s := New(NewRedisBackend(client, "test:"), local)
	ctx := context.Background()

	// take Redis away: writes and reads land in the local store
	m.Close()
	s.Set(ctx, "medewerkers", []map[string]string{{"naam": "Jan Janssen"}})

	var staff []map[string]string
	require.True(t, s.GetJSON(ctx, "medewerkers", &staff))
	require.Equal(t, "Jan Janssen", staff[0]["naam"])

	raw, err := local.Get(ctx, "medewerkers")
	require.NoError(t, err)
	require.NotNil(t, raw)
}
