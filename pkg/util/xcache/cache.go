// Package xcache provides generic key-value caches keyed by string.
package xcache

import "context"

// Cache stores values by key. Implementations are safe for concurrent use.
type Cache[T any] interface {
	// Get returns the value of the key, calling the loader of options when
	// the key is absent.
	Get(ctx context.Context, key string, options ...Option[T]) (T, bool)
	// Set saves the value of the key.
	Set(ctx context.Context, key string, value T)
	// Delete removes the value of the key.
	Delete(ctx context.Context, key string)
}

// ValueLoader loads the value of the key. The value is cached only when ok
// is true.
type ValueLoader[T any] func(ctx context.Context, key string) (value T, ok bool)

// Option is a function that sets options.
type Option[T any] func(*Options[T])

// Options is the options for Get.
type Options[T any] struct {
	Loader ValueLoader[T]
}

// WithLoader sets the value loader if not found.
func WithLoader[T any](loader ValueLoader[T]) Option[T] {
	return func(o *Options[T]) {
		o.Loader = loader
	}
}

// MakeOptions returns a new options.
func MakeOptions[T any](options ...Option[T]) *Options[T] {
	o := &Options[T]{}
	for _, apply := range options {
		apply(o)
	}
	if o.Loader == nil {
		o.Loader = func(context.Context, string) (T, bool) {
			var zero T
			return zero, false
		}
	}
	return o
}
