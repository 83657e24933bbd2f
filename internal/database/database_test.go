package database

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/autohandel/backoffice/internal/config"
	mr "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client, err := ConnectRedis(context.Background(), m.Addr(), "", 0, time.Second)
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	v, err := m.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", v)
}

func TestConnectRedis_Unreachable(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	addr := m.Addr()
	m.Close()

	client, err := ConnectRedis(context.Background(), addr, "", 0, 200*time.Millisecond)
	require.Error(t, err)
	require.Nil(t, client)
}

func TestConnectMongo_EmptyURI(t *testing.T) {
	_, err := ConnectMongo(context.Background(), "", time.Second)
	require.Error(t, err)
}

func TestConnectMongoWithRetry_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ConnectMongoWithRetry(ctx, "", time.Second, 3, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
}

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	return &config.Config{
		Storage: config.StorageConfig{Backend: backend, FallbackPath: filepath.Join(t.TempDir(), "fallback.db")},
		Redis: config.RedisConfig{Prefix: "test:"},
	}
}

func TestOpenStores_RedisPrimary(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	cfg := testConfig(t, config.BackendRedis)
	host, port, err := net.SplitHostPort(m.Addr())
	require.NoError(t, err)
	cfg.Redis.Host, cfg.Redis.Port = host, port

	s, err := OpenStores(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()

	require.NotNil(t, s.Redis)
	require.True(t, s.KV.HasPrimary())

	s.KV.Set(context.Background(), "wagens", []int{1})
	raw, err := m.Get("test:wagens")
	require.NoError(t, err)
	require.Equal(t, "[1]", raw)
}

func TestOpenStores_UnreachableRedisUsesLocal(t *testing.T) {
	cfg := testConfig(t, config.BackendRedis)
	cfg.Redis.Host, cfg.Redis.Port = "127.0.0.1", "1"

	s, err := OpenStores(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()

	require.Nil(t, s.Redis)
	require.False(t, s.KV.HasPrimary())

	ctx := context.Background()
	s.KV.Set(ctx, "kosten", []int{5})
	var got []int
	require.True(t, s.KV.GetJSON(ctx, "kosten", &got))
	require.Equal(t, []int{5}, got)
}

func TestOpenStores_BadFallbackPath(t *testing.T) {
	cfg := testConfig(t, config.BackendNone)
	cfg.Storage.FallbackPath = filepath.Join(t.TempDir(), "missing", "dir", "fallback.db")

	_, err := OpenStores(context.Background(), cfg)
	require.Error(t, err)
}
