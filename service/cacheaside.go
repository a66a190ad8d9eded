// service/cacheaside.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/andreyques41/lyfter-store/cache"
	logger "github.com/andreyques41/lyfter-store/logging"
	"github.com/andreyques41/lyfter-store/repository"
)

const (
	defaultEntryTTL = 10 * time.Minute
	defaultListTTL  = 2 * time.Minute
)

// CachedStore wraps one entity kind's repository with cache-aside reads and
// write-path invalidation. Reads check the cache first and repopulate it on
// miss; writes go to the repository first and, only once the mutation is
// durable, delete every key that could hold stale data about the record: the
// entity's own key, the collection key, and the paginated views.
//
// Cache failures of any sort are absorbed here. A caller can observe a slow
// read when the cache is down, never an error or wrong data. Repository
// failures always propagate.
//
// No lock is held across cache or repository calls, so a read racing a write
// can repopulate a just-invalidated key with the old value. That entry lives
// at most until its TTL, which is why entries always carry a finite one.
type CachedStore[T any] struct {
	kind      string
	repo      repository.Repository[T]
	kv        cache.KeyValueCache
	codec     cache.Codec[T]
	listCodec cache.Codec[[]T]
	entryTTL  time.Duration
	listTTL   time.Duration
}

// NewCachedStore builds the cache-aside wrapper for a kind. Non-positive
// TTLs fall back to finite defaults; an entry with no expiry would let a
// missed invalidation live forever.
func NewCachedStore[T any](kind string, repo repository.Repository[T], kv cache.KeyValueCache, entryTTL, listTTL time.Duration) *CachedStore[T] {
	if entryTTL <= 0 {
		entryTTL = defaultEntryTTL
	}
	if listTTL <= 0 {
		listTTL = defaultListTTL
	}
	return &CachedStore[T]{
		kind:      kind,
		repo:      repo,
		kv:        kv,
		codec:     cache.NewJSONCodec[T](),
		listCodec: cache.NewJSONCodec[[]T](),
		entryTTL:  entryTTL,
		listTTL:   listTTL,
	}
}

// GetByID returns the entity from the cache when present, otherwise from the
// repository, repopulating the cache on the way out. A repository not-found
// is returned as-is and never cached.
func (s *CachedStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	key, err := cache.EntityKey(s.kind, id)
	if err != nil {
		return nil, err
	}

	if record, ok := s.cachedEntity(ctx, key); ok {
		return record, nil
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.populate(ctx, key, *record, s.entryTTL)
	return record, nil
}

// GetAll returns the full collection, cached under the collection key with
// the shorter list TTL since any single mutation stales it.
func (s *CachedStore[T]) GetAll(ctx context.Context) ([]T, error) {
	key := cache.CollectionKey(s.kind)

	if records, ok := s.cachedList(ctx, key); ok {
		return records, nil
	}

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.populateList(ctx, key, records, s.listTTL)
	return records, nil
}

// List returns one paginated view, cached under its page key.
func (s *CachedStore[T]) List(ctx context.Context, limit, offset int) ([]T, error) {
	key := cache.PageKey(s.kind, limit, offset)

	if records, ok := s.cachedList(ctx, key); ok {
		return records, nil
	}

	records, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	s.populateList(ctx, key, records, s.listTTL)
	return records, nil
}

// Create persists the record, then invalidates the collection views its
// membership change staled. The cache is never touched when the repository
// reports failure.
func (s *CachedStore[T]) Create(ctx context.Context, record T) (*T, error) {
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, "")
	return created, nil
}

// Update persists the change, then invalidates the entity key and every
// collection view. The record's primary key must already equal id.
func (s *CachedStore[T]) Update(ctx context.Context, id string, record T) (*T, error) {
	updated, err := s.repo.Update(ctx, id, record)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return updated, nil
}

// Delete removes the record, then invalidates the entity key and every
// collection view.
func (s *CachedStore[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

// cachedEntity reads and decodes one entry. Every failure mode, transport,
// timeout, or corrupt payload, degrades to a miss.
func (s *CachedStore[T]) cachedEntity(ctx context.Context, key string) (*T, bool) {
	data, ok := s.fetch(ctx, key)
	if !ok {
		return nil, false
	}
	record, err := s.codec.Decode(data)
	if err != nil {
		logger.Warn("Corrupt cache entry treated as miss",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	logger.Debug("Cache hit", zap.String("key", key))
	return &record, true
}

func (s *CachedStore[T]) cachedList(ctx context.Context, key string) ([]T, bool) {
	data, ok := s.fetch(ctx, key)
	if !ok {
		return nil, false
	}
	records, err := s.listCodec.Decode(data)
	if err != nil {
		logger.Warn("Corrupt cache entry treated as miss",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	logger.Debug("Cache hit", zap.String("key", key))
	return records, true
}

func (s *CachedStore[T]) fetch(ctx context.Context, key string) ([]byte, bool) {
	exists, err := s.kv.Exists(ctx, key)
	if err != nil {
		logger.Warn("Cache unavailable, falling back to repository",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !exists {
		return nil, false
	}

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		// The entry may have expired between Exists and Get; either way
		// the repository answers.
		logger.Debug("Cache entry gone, falling back to repository",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return data, true
}

func (s *CachedStore[T]) populate(ctx context.Context, key string, record T, ttl time.Duration) {
	data, err := s.codec.Encode(record)
	if err != nil {
		logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Failed to populate cache", zap.String("key", key), zap.Error(err))
	}
}

func (s *CachedStore[T]) populateList(ctx context.Context, key string, records []T, ttl time.Duration) {
	data, err := s.listCodec.Encode(records)
	if err != nil {
		logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Failed to populate cache", zap.String("key", key), zap.Error(err))
	}
}

// invalidate deletes the complete invalidation set for one mutation: the
// collection key, every page key, and, when id is non-empty, the entity key.
// Failures are logged and absorbed; the mutation is already durable and the
// stale entries will expire by TTL.
func (s *CachedStore[T]) invalidate(ctx context.Context, id string) {
	keys := []string{cache.CollectionKey(s.kind)}
	if id != "" {
		key, err := cache.EntityKey(s.kind, id)
		if err == nil {
			keys = append(keys, key)
		}
	}

	if err := s.kv.Delete(ctx, keys...); err != nil {
		logger.Warn("Cache invalidation failed, entries will expire by TTL",
			zap.Strings("keys", keys), zap.Error(err))
	}
	if err := s.kv.DeleteMatching(ctx, cache.PagePattern(s.kind)); err != nil {
		logger.Warn("Cache page sweep failed, entries will expire by TTL",
			zap.String("kind", s.kind), zap.Error(err))
	}
}
