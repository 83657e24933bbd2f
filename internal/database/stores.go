package database

import (
	"context"
	"time"

	"github.com/autohandel/backoffice/internal/config"
	"github.com/autohandel/backoffice/internal/kv"
	"github.com/autohandel/backoffice/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	mongoAttempts = 5
	redisTimeout  = 5 * time.Second
)

// Stores holds the opened storage handles. Redis is nil when it is not
// configured or did not answer the startup ping.
type Stores struct {
	KV    *kv.Store
	Redis *redis.Client

	closers []func()
}

// Close releases every connection OpenStores made.
func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// OpenStores opens the local SQLite store and, as configured, the Redis or
// Mongo primary. An unreachable primary is logged and skipped so the local
// store takes every operation; only a local store that cannot be opened is
// an error.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	log := logger.Named("storage")

	local, err := kv.OpenSQLite(cfg.Storage.FallbackPath)
	if err != nil {
		return nil, err
	}
	s := &Stores{closers: []func(){func() { _ = local.Close() }}}

	if cfg.Redis.Host != "" {
		addr := cfg.Redis.Host + ":" + cfg.Redis.Port
		client, err := ConnectRedis(ctx, addr, cfg.Redis.Password, cfg.Redis.DB, redisTimeout)
		if err != nil {
			log.Warnf("failed to connect to Redis (%s): %v", addr, err)
		} else {
			log.Infof("connected to Redis: %s", addr)
			s.Redis = client
			s.closers = append(s.closers, func() { _ = client.Close() })
		}
	}

	var primary kv.Backend
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		if s.Redis != nil {
			primary = kv.NewRedisBackend(s.Redis, cfg.Redis.Prefix)
		}
	case config.BackendMongo:
		if cfg.MongoDB.URI == "" {
			log.Warnf("KV_BACKEND=mongo but MONGODB_URI is empty")
			break
		}
		client, err := ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, mongoAttempts, time.Second)
		if err != nil {
			log.Warnf("could not connect to MongoDB after %d attempts: %v", mongoAttempts, err)
			break
		}
		s.closers = append(s.closers, func() { _ = client.Disconnect(context.Background()) })
		primary = kv.NewMongoBackend(client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection))
	}
	if primary == nil {
		log.Warnf("no primary store available; all data lives in %s", cfg.Storage.FallbackPath)
	}

	s.KV = kv.New(primary, local)
	return s, nil
}
