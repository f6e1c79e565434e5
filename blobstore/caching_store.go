package blobstore

import (
	"context"
	"sync"

	"github.com/hupe1980/bitvec/internal/cache"
	"github.com/hupe1980/bitvec/internal/resource"
)

// DefaultCacheBytes is the capacity used by NewCachingStore when capacity <= 0.
const DefaultCacheBytes = 64 << 20

// CachingStore wraps a BlobStore with a read-through LRU of whole blobs.
// Useful in front of remote stores when the same buffers are loaded
// repeatedly. Writes and deletes through the wrapper invalidate the entry;
// writes that bypass it are not observed.
type CachingStore struct {
	inner BlobStore
	cache *cache.LRU

	// gen is bumped by every write through the store. A Get only fills the
	// cache if no write started or finished while it read the inner store.
	mu  sync.Mutex
	gen uint64
}

// NewCachingStore creates a new CachingStore holding up to capacity bytes.
// If rc is non-nil, cached bytes count against its memory limit.
func NewCachingStore(inner BlobStore, capacity int64, rc *resource.Controller) *CachingStore {
	if capacity <= 0 {
		capacity = DefaultCacheBytes
	}
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRU(capacity, rc),
	}
}

// Get returns the blob from the cache or the inner store.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.cache.Get(name); ok {
		return clone(data), nil
	}
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gen == gen {
		s.cache.Set(name, clone(data))
	}
	s.mu.Unlock()
	return data, nil
}

// invalidate drops the cached copy of name and fences in-flight fills.
func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	s.gen++
	s.cache.Remove(name)
	s.mu.Unlock()
}

// Put writes through and invalidates the cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Delete removes the blob and its cached copy.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List is passed through uncached.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns cache hit and miss counters.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}

func clone(p []byte) []byte {
	out := make([]byte, len(p))
	copy(out, p)
	return out
}
