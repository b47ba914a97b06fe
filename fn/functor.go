package fn

import "github.com/cockroachdb/errors"

// ErrEmpty is returned by TryCall on a wrapper that holds nothing.
var ErrEmpty = errors.New("fn: call of empty wrapper")

// Unit is the argument or result type of signatures that have none.
type Unit = struct{}

// Invoker is anything callable with an A that produces an R.
type Invoker[A, R any] interface {
	Invoke(A) R
}

// Functor is an Invoker that knows how to duplicate itself. Func relies on
// Clone for copies, so a Functor carrying state must return an independent
// copy of it.
type Functor[A, R any] interface {
	Invoker[A, R]
	Clone() Functor[A, R]
}

// Cloner is implemented by state types that need more than a shallow copy.
// Stateful accepts Clone on either a value or a pointer receiver.
type Cloner[T any] interface {
	Clone() T
}

// plain wraps a func value. Copies share whatever the closure captured.
type plain[A, R any] struct {
	f func(A) R
}

func (p plain[A, R]) Invoke(a A) R { return p.f(a) }

func (p plain[A, R]) Clone() Functor[A, R] { return p }

// stateful carries its state by value; Invoke may mutate it.
type stateful[S, A, R any] struct {
	state S
	step  func(*S, A) R
	copy  func(S) S
}

func (s *stateful[S, A, R]) Invoke(a A) R { return s.step(&s.state, a) }

func (s *stateful[S, A, R]) Clone() Functor[A, R] {
	return &stateful[S, A, R]{state: s.copy(s.state), step: s.step, copy: s.copy}
}

func copyState[S any](s S) S {
	if c, ok := any(s).(Cloner[S]); ok {
		return c.Clone()
	}
	if c, ok := any(&s).(Cloner[S]); ok {
		return c.Clone()
	}
	return s
}
