package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreyques41/lyfter-store/cache"
	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	"github.com/andreyques41/lyfter-store/logging"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/service"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "lyfter-test-logs")
	if err != nil {
		panic(err)
	}
	logging.InitLogger(dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// fakeProductRepo is an in-memory stand-in for the persistent store. It
// counts reads so tests can tell cache hits from fallthroughs.
type fakeProductRepo struct {
	records    map[string]model.Product
	getCalls   int
	allCalls   int
	failWrites bool
}

func newFakeProductRepo(products ...model.Product) *fakeProductRepo {
	repo := &fakeProductRepo{records: make(map[string]model.Product)}
	for _, p := range products {
		repo.records[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) Create(ctx context.Context, record model.Product) (*model.Product, error) {
	if f.failWrites {
		return nil, lyfter_errors.ErrDatabaseOperation
	}
	f.records[record.ID] = record
	return &record, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	f.getCalls++
	record, ok := f.records[id]
	if !ok {
		return nil, lyfter_errors.ErrProductNotFound
	}
	return &record, nil
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]model.Product, error) {
	f.allCalls++
	records := make([]model.Product, 0, len(f.records))
	for _, record := range f.records {
		records = append(records, record)
	}
	return records, nil
}

func (f *fakeProductRepo) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	records, _ := f.GetAll(ctx)
	if offset >= len(records) {
		return nil, nil
	}
	records = records[offset:]
	if limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id string, record model.Product) (*model.Product, error) {
	if f.failWrites {
		return nil, lyfter_errors.ErrDatabaseOperation
	}
	if _, ok := f.records[id]; !ok {
		return nil, lyfter_errors.ErrProductNotFound
	}
	f.records[id] = record
	return &record, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if f.failWrites {
		return lyfter_errors.ErrDatabaseOperation
	}
	if _, ok := f.records[id]; !ok {
		return lyfter_errors.ErrProductNotFound
	}
	delete(f.records, id)
	return nil
}

// failingCache refuses every operation, simulating a cache outage.
type failingCache struct{}

func (failingCache) Exists(ctx context.Context, key string) (bool, error) {
	return false, cache.ErrUnavailable
}
func (failingCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, cache.ErrUnavailable
}
func (failingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return cache.ErrUnavailable
}
func (failingCache) Delete(ctx context.Context, keys ...string) error {
	return cache.ErrUnavailable
}
func (failingCache) DeleteMatching(ctx context.Context, pattern string) error {
	return cache.ErrUnavailable
}
func (failingCache) Ping(ctx context.Context) error { return cache.ErrUnavailable }
func (failingCache) Close() error                   { return nil }

// countingCache records Set calls on top of the in-memory cache.
type countingCache struct {
	*cache.Memory
	setCalls int
}

func (c *countingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.setCalls++
	return c.Memory.Set(ctx, key, value, ttl)
}

func mustKey(t *testing.T, kind, id string) string {
	t.Helper()
	key, err := cache.EntityKey(kind, id)
	require.NoError(t, err)
	return key
}

func TestGetByIDCacheMiss(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120})
	mem := cache.NewMemory()
	store := service.NewCachedStore(model.KindProduct, repo, mem, 0, 0)

	product, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Desk", product.Name)
	assert.Equal(t, 1, repo.getCalls)

	// The miss repopulated the cache.
	exists, err := mem.Exists(ctx, mustKey(t, model.KindProduct, "1"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetByIDCacheHit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120})
	store := service.NewCachedStore(model.KindProduct, repo, cache.NewMemory(), 0, 0)

	first, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	second, err := store.GetByID(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getCalls, "second read must be served from cache")
}

func TestGetAllCachesCollection(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(
		model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120},
		model.Product{ID: "2", Name: "Lamp", Category: "furniture", Price: 40},
	)
	mem := cache.NewMemory()
	store := service.NewCachedStore(model.KindProduct, repo, mem, 0, 0)

	products, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.allCalls)

	exists, _ := mem.Exists(ctx, cache.CollectionKey(model.KindProduct))
	assert.True(t, exists)
}

func TestUpdateInvalidatesEntityAndCollection(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120})
	mem := cache.NewMemory()
	store := service.NewCachedStore(model.KindProduct, repo, mem, 0, 0)

	// Populate entity, collection and one page view.
	_, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	_, err = store.GetAll(ctx)
	require.NoError(t, err)
	_, err = store.List(ctx, 20, 0)
	require.NoError(t, err)

	_, err = store.Update(ctx, "1", model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 150})
	require.NoError(t, err)

	entityExists, _ := mem.Exists(ctx, mustKey(t, model.KindProduct, "1"))
	collectionExists, _ := mem.Exists(ctx, cache.CollectionKey(model.KindProduct))
	pageExists, _ := mem.Exists(ctx, cache.PageKey(model.KindProduct, 20, 0))
	assert.False(t, entityExists, "entity key must be invalidated")
	assert.False(t, collectionExists, "collection key must be invalidated")
	assert.False(t, pageExists, "page keys must be swept")

	// Any read observing the invalidation sees the new value.
	product, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 150.0, product.Price)
}

func TestCreateInvalidatesCollection(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120})
	mem := cache.NewMemory()
	store := service.NewCachedStore(model.KindProduct, repo, mem, 0, 0)

	_, err := store.GetAll(ctx)
	require.NoError(t, err)

	_, err = store.Create(ctx, model.Product{ID: "2", Name: "Lamp", Category: "furniture", Price: 40})
	require.NoError(t, err)

	collectionExists, _ := mem.Exists(ctx, cache.CollectionKey(model.KindProduct))
	assert.False(t, collectionExists)

	products, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestDeleteInvalidatesEntityAndCollection(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120})
	mem := cache.NewMemory()
	store := service.NewCachedStore(model.KindProduct, repo, mem, 0, 0)

	_, err := store.GetByID(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "1"))

	entityExists, _ := mem.Exists(ctx, mustKey(t, model.KindProduct, "1"))
	assert.False(t, entityExists)

	_, err = store.GetByID(ctx, "1")
	assert.ErrorIs(t, err, lyfter_errors.ErrProductNotFound)
}

func TestNoNegativeCaching(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	counting := &countingCache{Memory: cache.NewMemory()}
	store := service.NewCachedStore(model.KindProduct, repo, counting, 0, 0)

	_, err := store.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, lyfter_errors.ErrProductNotFound)
	assert.Zero(t, counting.setCalls, "a missing record must never be cached")

	// Each read of a missing id consults the repository again.
	_, err = store.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, lyfter_errors.ErrProductNotFound)
	assert.Equal(t, 2, repo.getCalls)
}

func TestRepositoryFailureSkipsCache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120})
	repo.failWrites = true
	counting := &countingCache{Memory: cache.NewMemory()}
	store := service.NewCachedStore(model.KindProduct, repo, counting, 0, 0)

	// Pre-populate so a (wrong) invalidation would be observable.
	_, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	before := counting.setCalls

	_, err = store.Update(ctx, "1", model.Product{ID: "1", Name: "Desk", Price: 999})
	assert.ErrorIs(t, err, lyfter_errors.ErrDatabaseOperation)

	// The failed mutation touched nothing: the entry is still there.
	exists, _ := counting.Exists(ctx, mustKey(t, model.KindProduct, "1"))
	assert.True(t, exists)
	assert.Equal(t, before, counting.setCalls)
}

func TestDegradationUnderCacheOutage(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120})
	store := service.NewCachedStore(model.KindProduct, repo, failingCache{}, 0, 0)

	product, err := store.GetByID(ctx, "1")
	require.NoError(t, err, "a cache outage must never surface to the caller")
	assert.Equal(t, "Desk", product.Name)

	products, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	_, err = store.Create(ctx, model.Product{ID: "2", Name: "Lamp", Category: "furniture", Price: 40})
	require.NoError(t, err)

	_, err = store.Update(ctx, "1", model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 130})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "2"))

	// Reads keep returning repository truth throughout.
	product, err = store.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 130.0, product.Price)
}

func TestCorruptEntryTreatedAsMiss(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120})
	mem := cache.NewMemory()
	store := service.NewCachedStore(model.KindProduct, repo, mem, 0, 0)

	key := mustKey(t, model.KindProduct, "1")
	require.NoError(t, mem.Set(ctx, key, []byte("{corrupt"), 0))

	product, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Desk", product.Name)
	assert.Equal(t, 1, repo.getCalls)

	// The corrupt payload was overwritten by the repopulation.
	data, err := mem.Get(ctx, key)
	require.NoError(t, err)
	cached, err := cache.NewJSONCodec[model.Product]().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Desk", cached.Name)
}

func TestEntryTTLBound(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 120})
	mem := cache.NewMemory()
	store := service.NewCachedStore(model.KindProduct, repo, mem, 25*time.Millisecond, 25*time.Millisecond)

	_, err := store.GetByID(ctx, "1")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	exists, _ := mem.Exists(ctx, mustKey(t, model.KindProduct, "1"))
	assert.False(t, exists, "entries must expire by TTL even with no invalidation")

	// The next read falls through and repopulates.
	_, err = store.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
}

func TestInvalidIdentifierRejected(t *testing.T) {
	ctx := context.Background()
	store := service.NewCachedStore(model.KindProduct, newFakeProductRepo(), cache.NewMemory(), 0, 0)

	_, err := store.GetByID(ctx, "")
	assert.ErrorIs(t, err, cache.ErrInvalidIdentifier)

	_, err = store.GetByID(ctx, "a:b")
	assert.ErrorIs(t, err, cache.ErrInvalidIdentifier)
}

// The end-to-end lifecycle: create, read populates, update invalidates, read
// repopulates with the new value, delete, read misses without repopulating.
func TestEntityLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	counting := &countingCache{Memory: cache.NewMemory()}
	store := service.NewCachedStore(model.KindProduct, repo, counting, 0, 0)
	key := mustKey(t, model.KindProduct, "1")

	_, err := store.Create(ctx, model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 10})
	require.NoError(t, err)

	product, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, product.Price)
	exists, _ := counting.Exists(ctx, key)
	assert.True(t, exists)

	_, err = store.Update(ctx, "1", model.Product{ID: "1", Name: "Desk", Category: "furniture", Price: 20})
	require.NoError(t, err)
	exists, _ = counting.Exists(ctx, key)
	assert.False(t, exists)
	exists, _ = counting.Exists(ctx, cache.CollectionKey(model.KindProduct))
	assert.False(t, exists)

	product, err = store.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, product.Price)
	exists, _ = counting.Exists(ctx, key)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "1"))
	sets := counting.setCalls

	_, err = store.GetByID(ctx, "1")
	assert.ErrorIs(t, err, lyfter_errors.ErrProductNotFound)
	assert.Equal(t, sets, counting.setCalls, "a deleted record must not repopulate the cache")
}
