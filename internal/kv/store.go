package kv

import (
	"context"
	"encoding/json"

	"github.com/autohandel/backoffice/pkg/logger"
	"github.com/autohandel/backoffice/pkg/metrics"
)

// Backend is a raw key-value store holding JSON-encoded values.
// Get returns (nil, nil) when the key is absent.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is the best-effort storage abstraction used by every repository.
// Operations go to the primary backend when one is configured; any primary
// error retries the same operation against the fallback. Errors are logged
// and counted but never returned, so callers cannot tell "absent" from
// "every backend failed".
type Store struct {
	primary  Backend
	fallback Backend
	log      *logger.Component
}

// New builds a Store. primary may be nil (fallback only). A nil fallback is
// replaced by an in-memory one so the no-error contract still holds.
func New(primary, fallback Backend) *Store {
	if fallback == nil {
		fallback = NewMemoryBackend()
	}
	return &Store{primary: primary, fallback: fallback, log: logger.Named("kv")}
}

// HasPrimary reports whether a primary backend is configured.
func (s *Store) HasPrimary() bool { return s.primary != nil }

// Get returns the raw JSON stored under key, or nil.
func (s *Store) Get(ctx context.Context, key string) json.RawMessage {
	if s.primary != nil {
		b, err := s.primary.Get(ctx, key)
		if err == nil {
			return b
		}
		s.log.Warnf("primary get %q failed, using fallback: %v", key, err)
		metrics.KVFallback.WithLabelValues("get").Inc()
	}
	b, err := s.fallback.Get(ctx, key)
	if err != nil {
		s.log.Errorf("fallback get %q failed: %v", key, err)
		metrics.KVErrors.WithLabelValues("get").Inc()
		return nil
	}
	return b
}

// Set stores value (JSON-encoded) under key.
func (s *Store) Set(ctx context.Context, key string, value interface{}) {
	b, err := json.Marshal(value)
	if err != nil {
		s.log.Errorf("encode %q: %v", key, err)
		metrics.KVErrors.WithLabelValues("set").Inc()
		return
	}
	if s.primary != nil {
		err := s.primary.Set(ctx, key, b)
		if err == nil {
			return
		}
		s.log.Warnf("primary set %q failed, using fallback: %v", key, err)
		metrics.KVFallback.WithLabelValues("set").Inc()
	}
	if err := s.fallback.Set(ctx, key, b); err != nil {
		s.log.Errorf("fallback set %q failed: %v", key, err)
		metrics.KVErrors.WithLabelValues("set").Inc()
	}
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) {
	if s.primary != nil {
		err := s.primary.Delete(ctx, key)
		if err == nil {
			return
		}
		s.log.Warnf("primary delete %q failed, using fallback: %v", key, err)
		metrics.KVFallback.WithLabelValues("delete").Inc()
	}
	if err := s.fallback.Delete(ctx, key); err != nil {
		s.log.Errorf("fallback delete %q failed: %v", key, err)
		metrics.KVErrors.WithLabelValues("delete").Inc()
	}
}

// GetJSON decodes the value under key into dst. It returns false when the
// key is absent or the stored value does not decode.
func (s *Store) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	raw := s.Get(ctx, key)
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Errorf("decode %q: %v", key, err)
		return false
	}
	return true
}
