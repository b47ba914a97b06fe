package memory

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

const inactive = ^uint64(0)

// ReaderEpoch marks when a reader entered a read section.
// A zero ReaderEpoch is inside a section at epoch 0; use NewReaderEpoch
// to start outside one.
type ReaderEpoch struct {
	epoch atomic.Uint64
}

func NewReaderEpoch() *ReaderEpoch {
	r := &ReaderEpoch{}
	r.epoch.Store(inactive)
	return r
}

func (r *ReaderEpoch) Value() uint64 {
	return r.epoch.Load()
}

// Active reports whether the reader is inside a read section.
func (r *ReaderEpoch) Active() bool {
	return r.epoch.Load() != inactive
}

func (r *ReaderEpoch) Exit() {
	r.epoch.Store(inactive)
}

// Reclaimer defers finalizers of released values while readers may still
// be looking at them.
type Reclaimer struct {
	epoch atomic.Uint64
	ring  *RetireRing
}

// NewReclaimer creates a reclaimer whose ring holds size pending
// finalizers. size must be a power of two.
func NewReclaimer(size uint64) *Reclaimer {
	return &Reclaimer{ring: NewRetireRing(size)}
}

// Enter puts r inside a read section at the reclaimer's current epoch.
func (c *Reclaimer) Enter(r *ReaderEpoch) {
	r.epoch.Store(c.epoch.Load())
}

func (c *Reclaimer) Epoch() uint64 {
	return c.epoch.Load()
}

// Retire queues f under the current epoch. When the ring is full f runs
// immediately.
func (c *Reclaimer) Retire(f Finalizer) error {
	if f == nil {
		return nil
	}
	if c.ring.Enqueue(Retired{Epoch: c.epoch.Load(), Finalize: f}) {
		return nil
	}
	return f()
}

// Pending returns the number of queued finalizers.
func (c *Reclaimer) Pending() int {
	return c.ring.Len()
}

// Reclaim advances the epoch and runs queued finalizers that were retired
// before the oldest active reader entered its read section. A reader that
// entered in the same epoch as a retirement may still see the value, so
// that entry stays queued, and so does everything behind it.
func (c *Reclaimer) Reclaim(readers ...*ReaderEpoch) error {
	c.epoch.Add(1)
	min := minReaderEpoch(readers...)

	var errs error
	for {
		e, ok := c.ring.Peek()
		if !ok || (min != inactive && e.Epoch >= min) {
			return errs
		}
		c.ring.Dequeue()
		if err := e.Finalize(); err != nil {
			errs = errors.CombineErrors(errs, err)
		}
	}
}

func minReaderEpoch(rs ...*ReaderEpoch) uint64 {
	min := inactive
	for _, r := range rs {
		if r == nil {
			continue
		}
		v := r.Value()
		if v < min {
			min = v
		}
	}
	return min
}
