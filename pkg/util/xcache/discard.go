package xcache

import "context"

// NewDiscard returns a cache which stores nothing. Get still calls the
// loader so callers behave the same with or without caching.
func NewDiscard[T any]() Cache[T] {
	return discardCache[T]{}
}

type discardCache[T any] struct{}

// Get implements Cache.
func (discardCache[T]) Get(ctx context.Context, key string, options ...Option[T]) (T, bool) {
	return MakeOptions(options...).Loader(ctx, key)
}

// Set implements Cache.
func (discardCache[T]) Set(context.Context, string, T) {}

// Delete implements Cache.
func (discardCache[T]) Delete(context.Context, string) {}
