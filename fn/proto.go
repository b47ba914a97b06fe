package fn

import "google.golang.org/protobuf/proto"

// Message wraps step together with a protobuf message used as state.
// Copies of the wrapper get their own message through proto.Clone.
func Message[M proto.Message, A, R any](m M, step func(M, A) R) *Func[A, R] {
	return FromFunctor[A, R](&stateful[M, A, R]{
		state: m,
		step:  func(s *M, a A) R { return step(*s, a) },
		copy:  func(s M) M { return proto.Clone(s).(M) },
	})
}
