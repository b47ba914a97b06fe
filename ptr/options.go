package ptr

import "refkit/infra/memory"

// Option configures how a Shared finalizes its value.
type Option[T any] func(*options[T])

type options[T any] struct {
	release   func(*T) error
	reclaimer *memory.Reclaimer
}

// WithRelease sets the function run on the value when the last owner
// releases it. It takes precedence over io.Closer detection.
func WithRelease[T any](fn func(*T) error) Option[T] {
	return func(o *options[T]) { o.release = fn }
}

// WithReclaimer defers finalization to r instead of running it inside
// Release.
func WithReclaimer[T any](r *memory.Reclaimer) Option[T] {
	return func(o *options[T]) { o.reclaimer = r }
}
