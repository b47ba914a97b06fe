package fn

// noCopy lets go vet flag wrappers copied by value; use Clone instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Func owns at most one Functor. The zero value is empty.
type Func[A, R any] struct {
	_    noCopy
	impl Functor[A, R]
}

// Empty returns a wrapper that holds nothing.
func Empty[A, R any]() *Func[A, R] {
	return &Func[A, R]{}
}

// Of wraps f. A nil f gives an empty wrapper.
func Of[A, R any](f func(A) R) *Func[A, R] {
	w := &Func[A, R]{}
	w.Set(f)
	return w
}

// Stateful wraps step together with state captured by value. Every copy of
// the wrapper gets its own state; when S implements Cloner[S] its Clone
// method makes the copy.
func Stateful[S, A, R any](init S, step func(*S, A) R) *Func[A, R] {
	return FromFunctor[A, R](&stateful[S, A, R]{state: init, step: step, copy: copyState[S]})
}

// FromFunctor wraps a caller-supplied Functor.
func FromFunctor[A, R any](f Functor[A, R]) *Func[A, R] {
	return &Func[A, R]{impl: f}
}

// Clone returns an independent copy of w.
func (w *Func[A, R]) Clone() *Func[A, R] {
	if w.impl == nil {
		return &Func[A, R]{}
	}
	return &Func[A, R]{impl: w.impl.Clone()}
}

// Assign replaces w's invocable with a copy of src's. Assigning an empty
// src leaves w unchanged, as does assigning w to itself.
func (w *Func[A, R]) Assign(src *Func[A, R]) {
	if src == w || src.impl == nil {
		return
	}
	w.impl = src.impl.Clone()
}

// Set replaces w's invocable with f. A nil f empties w.
func (w *Func[A, R]) Set(f func(A) R) {
	if f == nil {
		w.impl = nil
		return
	}
	w.impl = plain[A, R]{f: f}
}

// SetFunctor replaces w's invocable with f.
func (w *Func[A, R]) SetFunctor(f Functor[A, R]) {
	w.impl = f
}

// Call invokes the wrapped invocable, or returns the zero R when w is empty.
func (w *Func[A, R]) Call(a A) R {
	if w.impl == nil {
		var zero R
		return zero
	}
	return w.impl.Invoke(a)
}

// TryCall is Call that reports an empty wrapper as ErrEmpty.
func (w *Func[A, R]) TryCall(a A) (R, error) {
	if w.impl == nil {
		var zero R
		return zero, ErrEmpty
	}
	return w.impl.Invoke(a), nil
}

func (w *Func[A, R]) IsEmpty() bool {
	return w.impl == nil
}

// Release drops the wrapped invocable.
func (w *Func[A, R]) Release() {
	w.impl = nil
}

// Thunk adapts a function without arguments.
func Thunk[R any](f func() R) *Func[Unit, R] {
	if f == nil {
		return Empty[Unit, R]()
	}
	return Of(func(Unit) R { return f() })
}

// Action adapts a function without a result.
func Action[A any](f func(A)) *Func[A, Unit] {
	if f == nil {
		return Empty[A, Unit]()
	}
	return Of(func(a A) Unit { f(a); return Unit{} })
}
