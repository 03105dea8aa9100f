package xcache

import (
	"context"
	"time"

	"github.com/maypok86/otter"
	"golang.org/x/sync/singleflight"
)

// NewMemory returns an in-memory cache holding at most capacity entries,
// each expiring ttl after it was set.
func NewMemory[T any](capacity int, ttl time.Duration) (Cache[T], error) {
	cache, err := otter.MustBuilder[string, T](capacity).
		WithTTL(ttl).
		Build()
	if err != nil {
		return nil, err
	}
	return &memoryCache[T]{cache: cache}, nil
}

type memoryCache[T any] struct {
	cache     otter.Cache[string, T]
	loadGroup singleflight.Group
}

type loaded[T any] struct {
	value T
	ok    bool
}

// Get implements Cache. Concurrent loads of the same key share one loader
// call.
func (s *memoryCache[T]) Get(ctx context.Context, key string, options ...Option[T]) (T, bool) {
	if v, ok := s.cache.Get(key); ok {
		return v, true
	}
	o := MakeOptions(options...)
	v, _, _ := s.loadGroup.Do(key, func() (any, error) {
		value, ok := o.Loader(ctx, key)
		if ok {
			s.cache.Set(key, value)
		}
		return loaded[T]{value: value, ok: ok}, nil
	})
	result := v.(loaded[T])
	return result.value, result.ok
}

// Set implements Cache.
func (s *memoryCache[T]) Set(_ context.Context, key string, value T) {
	s.cache.Set(key, value)
}

// Delete implements Cache.
func (s *memoryCache[T]) Delete(_ context.Context, key string) {
	s.cache.Delete(key)
}
