package memory

import "sync/atomic"

// Finalizer releases whatever a retired value was holding on to.
type Finalizer func() error

// Retired is a finalizer stamped with the epoch it was retired in.
type Retired struct {
	Epoch    uint64
	Finalize Finalizer
}

// RetireRing is a lock-free SPSC ring buffer of pending finalizers.
// The owning side enqueues when a reference count drops to zero, the
// reclaiming side dequeues.
type RetireRing struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []Retired
	mask  uint64
}

func NewRetireRing(size uint64) *RetireRing {
	if size == 0 || size&(size-1) != 0 {
		panic("RetireRing size must be power of two")
	}
	return &RetireRing{
		buf:  make([]Retired, size),
		mask: size - 1,
	}
}

// Enqueue returns false when the ring is full.
func (r *RetireRing) Enqueue(e Retired) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = e
	atomic.StoreUint64(&r.head, h+1)
	return true
}

// Dequeue reports false when the ring is empty.
func (r *RetireRing) Dequeue() (Retired, bool) {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return Retired{}, false
	}
	e := r.buf[t&r.mask]
	r.buf[t&r.mask] = Retired{}
	atomic.StoreUint64(&r.tail, t+1)
	return e, true
}

// Peek returns the oldest entry without removing it.
func (r *RetireRing) Peek() (Retired, bool) {
	t := r.tail
	if t == atomic.LoadUint64(&r.head) {
		return Retired{}, false
	}
	return r.buf[t&r.mask], true
}

func (r *RetireRing) Len() int {
	return int(atomic.LoadUint64(&r.head) - atomic.LoadUint64(&r.tail))
}

func (r *RetireRing) Cap() int {
	return len(r.buf)
}
