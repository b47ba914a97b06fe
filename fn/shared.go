package fn

import "refkit/ptr"

// invokerBox gives an Invoker interface value a concrete type to point at.
type invokerBox[A, R any] struct {
	inv Invoker[A, R]
}

// SharedFunc holds its invocable through a ptr.Shared. Copies alias the
// same implementation; nothing is duplicated.
type SharedFunc[A, R any] struct {
	_ noCopy
	p *ptr.Shared[invokerBox[A, R]]
}

// EmptyShared returns a shared wrapper that holds nothing.
func EmptyShared[A, R any]() *SharedFunc[A, R] {
	return &SharedFunc[A, R]{p: ptr.Empty[invokerBox[A, R]]()}
}

// Share wraps f. A nil f gives an empty wrapper.
func Share[A, R any](f func(A) R) *SharedFunc[A, R] {
	w := EmptyShared[A, R]()
	_ = w.Set(f)
	return w
}

// ShareInvoker wraps inv.
func ShareInvoker[A, R any](inv Invoker[A, R]) *SharedFunc[A, R] {
	w := EmptyShared[A, R]()
	_ = w.SetInvoker(inv)
	return w
}

func (w *SharedFunc[A, R]) handle() *ptr.Shared[invokerBox[A, R]] {
	if w.p == nil {
		w.p = ptr.Empty[invokerBox[A, R]]()
	}
	return w.p
}

// Clone returns a wrapper aliasing w's implementation.
func (w *SharedFunc[A, R]) Clone() *SharedFunc[A, R] {
	return &SharedFunc[A, R]{p: w.handle().Clone()}
}

// Assign makes w alias src's implementation. Unlike Func.Assign, an empty
// src empties w.
func (w *SharedFunc[A, R]) Assign(src *SharedFunc[A, R]) error {
	if src == w {
		return nil
	}
	return w.handle().Assign(src.handle())
}

// Set replaces w's implementation with f. A nil f empties w.
func (w *SharedFunc[A, R]) Set(f func(A) R) error {
	if f == nil {
		return w.handle().Release()
	}
	return w.SetInvoker(plain[A, R]{f: f})
}

// SetInvoker replaces w's implementation with inv.
func (w *SharedFunc[A, R]) SetInvoker(inv Invoker[A, R]) error {
	fresh := ptr.New(&invokerBox[A, R]{inv: inv})
	defer fresh.Release()
	return w.handle().Assign(fresh)
}

// Call invokes the wrapped invocable, or returns the zero R when w is empty.
func (w *SharedFunc[A, R]) Call(a A) R {
	r, _ := w.TryCall(a)
	return r
}

// TryCall is Call that reports an empty wrapper as ErrEmpty.
func (w *SharedFunc[A, R]) TryCall(a A) (R, error) {
	box := w.handle().Get()
	if box == nil || box.inv == nil {
		var zero R
		return zero, ErrEmpty
	}
	return box.inv.Invoke(a), nil
}

func (w *SharedFunc[A, R]) IsEmpty() bool {
	box := w.handle().Get()
	return box == nil || box.inv == nil
}

// Release drops w's reference; the implementation goes away with the last
// one.
func (w *SharedFunc[A, R]) Release() error {
	return w.handle().Release()
}

// UseCount returns how many wrappers share w's implementation.
func (w *SharedFunc[A, R]) UseCount() int {
	return w.handle().UseCount()
}

// Same reports whether w and o share one implementation. Two empty
// wrappers are the same.
func (w *SharedFunc[A, R]) Same(o *SharedFunc[A, R]) bool {
	return w.handle().Equal(o.handle())
}
