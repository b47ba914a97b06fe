package ptr

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"refkit/infra/logging"
)

// ErrAliased is returned by UnsafeSet on a handle that shares its value.
var ErrAliased = errors.New("ptr: value is shared with other handles")

// noCopy lets go vet flag handles copied by value; use Clone instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Shared is an owning handle to a *T with a detached reference count.
// The zero value is an empty handle.
type Shared[T any] struct {
	_    noCopy
	v    *T
	rc   *block
	opts *options[T]
}

// Empty returns a handle that owns nothing.
func Empty[T any]() *Shared[T] {
	return &Shared[T]{}
}

// New takes ownership of v. v must not be owned by another handle created
// with New, or it will be finalized twice. A nil v still gets a control
// block, so the handle counts owners like any other.
func New[T any](v *T, opts ...Option[T]) *Shared[T] {
	o := &options[T]{}
	for _, opt := range opts {
		opt(o)
	}
	p := &Shared[T]{v: v, rc: newBlock(), opts: o}

	if logging.Enabled(zerolog.DebugLevel) {
		log := logging.For("ptr")
		log.Debug().Uint64("block", p.rc.id).Type("type", v).Msg("block allocated")
	}
	return p
}

// Clone returns a new handle aliasing p's value and bumps the count.
func (p *Shared[T]) Clone() *Shared[T] {
	c := &Shared[T]{v: p.v, rc: p.rc, opts: p.opts}
	if c.rc != nil {
		c.rc.n++
	}
	return c
}

// Swap exchanges the ownership held by p and o.
func (p *Shared[T]) Swap(o *Shared[T]) {
	p.v, o.v = o.v, p.v
	p.rc, o.rc = o.rc, p.rc
	p.opts, o.opts = o.opts, p.opts
}

// Assign makes p an alias of src, releasing what p owned before. The
// old ownership is released after src is aliased, so assigning a handle
// to itself or to one of its aliases never drops the value.
func (p *Shared[T]) Assign(src *Shared[T]) error {
	tmp := src.Clone()
	p.Swap(tmp)
	return tmp.Release()
}

// Release gives up p's ownership. The value is finalized when p was the
// last owner. p is empty afterwards, so calling Release again does nothing.
func (p *Shared[T]) Release() error {
	v, rc, opts := p.v, p.rc, p.opts
	p.v, p.rc, p.opts = nil, nil, nil
	if rc == nil {
		return nil
	}
	rc.n--
	if rc.n > 0 {
		return nil
	}

	id := rc.id
	freeBlock(rc)

	if logging.Enabled(zerolog.DebugLevel) {
		log := logging.For("ptr")
		log.Debug().Uint64("block", id).Msg("block released")
	}

	fin := finalizer(v, opts)
	if fin == nil {
		return nil
	}
	run := func() error {
		if err := fin(); err != nil {
			log := logging.For("ptr")
			log.Error().Err(err).Uint64("block", id).Msg("finalize failed")
			return errors.Wrapf(err, "ptr: finalize block %d", id)
		}
		return nil
	}
	if opts != nil && opts.reclaimer != nil {
		return opts.reclaimer.Retire(run)
	}
	return run()
}

func finalizer[T any](v *T, opts *options[T]) func() error {
	if v == nil {
		return nil
	}
	if opts != nil && opts.release != nil {
		return func() error { return opts.release(v) }
	}
	if c, ok := any(v).(io.Closer); ok {
		return c.Close
	}
	return nil
}

// Get returns the raw value without transferring ownership.
func (p *Shared[T]) Get() *T {
	return p.v
}

// Value dereferences p. It panics when p holds no value.
func (p *Shared[T]) Value() *T {
	if p.v == nil {
		panic("ptr: dereference of empty Shared")
	}
	return p.v
}

// IsEmpty reports whether p holds no value.
func (p *Shared[T]) IsEmpty() bool {
	return p.v == nil
}

// UseCount returns the number of handles sharing p's control block,
// 0 when p has none.
func (p *Shared[T]) UseCount() int {
	if p.rc == nil {
		return 0
	}
	return p.rc.n
}

// Equal reports whether p and o point at the same value.
func (p *Shared[T]) Equal(o *Shared[T]) bool {
	return p.v == o.v
}

// UnsafeSet replaces the raw value without touching the count and
// without finalizing the previous value, which is returned to the caller.
// It is refused on handles that share their control block. A value set on
// an empty handle is not owned: Release will never finalize it.
func (p *Shared[T]) UnsafeSet(v *T) (*T, error) {
	if p.rc != nil && p.rc.n > 1 {
		log := logging.For("ptr")
		log.Warn().Uint64("block", p.rc.id).Int("refs", p.rc.n).Msg("UnsafeSet on shared handle refused")
		return nil, ErrAliased
	}
	old := p.v
	p.v = v
	return old, nil
}
