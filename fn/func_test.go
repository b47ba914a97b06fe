package fn

import (
	"testing"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestEmptyCallReturnsZero(t *testing.T) {
	f := Empty[Unit, int]()
	if got := f.Call(Unit{}); got != 0 {
		t.Errorf("Call on empty int() = %d, want 0", got)
	}
	if _, err := f.TryCall(Unit{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("TryCall err = %v, want ErrEmpty", err)
	}

	var v Func[Unit, Unit]
	if got := v.Call(Unit{}); got != (Unit{}) {
		t.Error("void() call should return nothing")
	}
	if !v.IsEmpty() {
		t.Error("zero value should be empty")
	}
}

func TestOfNilIsEmpty(t *testing.T) {
	if !Of[int, int](nil).IsEmpty() {
		t.Error("Of(nil) should be empty")
	}
	if !Thunk[int](nil).IsEmpty() || !Action[int](nil).IsEmpty() {
		t.Error("nil adapters should be empty")
	}
}

func TestCallDispatches(t *testing.T) {
	type pair struct{ a, b int }
	add := Of(func(p pair) int { return p.a + p.b })
	if got := add.Call(pair{2, 3}); got != 5 {
		t.Errorf("add = %d, want 5", got)
	}
	got, err := add.TryCall(pair{1, 1})
	if err != nil || got != 2 {
		t.Errorf("TryCall = %d, %v", got, err)
	}
}

// Capture by reference: the closure and its copies share one counter.
func TestCounterCapturedByReference(t *testing.T) {
	counter := 0
	f := Thunk(func() int { counter++; return counter })
	for i := 0; i < 3; i++ {
		f.Call(Unit{})
	}
	if counter != 3 {
		t.Fatalf("counter = %d, want 3", counter)
	}

	g := f.Clone()
	g.Call(Unit{})
	if counter != 4 {
		t.Errorf("counter = %d after calling the copy, want 4", counter)
	}
}

// Capture by value: each copy owns its own counter.
func TestCounterCapturedByValue(t *testing.T) {
	f := Stateful(0, func(n *int, _ Unit) int { *n++; return *n })
	for i := 0; i < 3; i++ {
		f.Call(Unit{})
	}

	g := f.Clone()
	if got := g.Call(Unit{}); got != 4 {
		t.Fatalf("copy continued from %d, want 4", got)
	}
	if got := f.Call(Unit{}); got != 4 {
		t.Errorf("original = %d, want 4: copy must not advance it", got)
	}
}

type tally struct {
	hits map[string]int
}

func (t tally) Clone() tally {
	c := tally{hits: make(map[string]int, len(t.hits))}
	for k, v := range t.hits {
		c.hits[k] = v
	}
	return c
}

func TestStatefulUsesCloner(t *testing.T) {
	f := Stateful(tally{hits: map[string]int{}}, func(s *tally, key string) int {
		s.hits[key]++
		return s.hits[key]
	})
	f.Call("a")

	g := f.Clone()
	g.Call("a")
	g.Call("a")
	if got := f.Call("a"); got != 2 {
		t.Errorf("original hits = %d, want 2: map must be deep-copied", got)
	}
}

type bag struct {
	items []int
}

func (b *bag) Clone() bag {
	return bag{items: append([]int(nil), b.items...)}
}

func TestStatefulUsesPointerCloner(t *testing.T) {
	f := Stateful(bag{items: []int{0}}, func(s *bag, _ Unit) int {
		s.items[0]++
		return s.items[0]
	})
	f.Call(Unit{})

	g := f.Clone()
	g.Call(Unit{})
	g.Call(Unit{})
	if got := f.Call(Unit{}); got != 2 {
		t.Errorf("original = %d, want 2: slice must be deep-copied", got)
	}
	if got := g.Call(Unit{}); got != 4 {
		t.Errorf("copy = %d, want 4", got)
	}
}

func TestAssignDeepCopies(t *testing.T) {
	b := Stateful(10, func(n *int, d int) int { *n += d; return *n })
	a := Of(func(int) int { return -1 })

	a.Assign(b)
	a.Call(5)
	a.Call(5)
	if got := b.Call(0); got != 10 {
		t.Errorf("source = %d, want 10 after mutating the target", got)
	}
	if got := a.Call(0); got != 20 {
		t.Errorf("target = %d, want 20", got)
	}
}

func TestAssignFromEmptyKeepsTarget(t *testing.T) {
	a := Of(func(x int) int { return x * 2 })
	a.Assign(Empty[int, int]())
	if a.IsEmpty() || a.Call(4) != 8 {
		t.Error("assigning an empty wrapper must leave the target unchanged")
	}
}

func TestSelfAssign(t *testing.T) {
	a := Stateful(0, func(n *int, _ Unit) int { *n++; return *n })
	a.Call(Unit{})
	a.Assign(a)
	if got := a.Call(Unit{}); got != 2 {
		t.Errorf("self assign reset state: got %d, want 2", got)
	}
}

func TestSetReplaces(t *testing.T) {
	a := Of(func(x int) int { return x })
	a.Set(func(x int) int { return x + 100 })
	if got := a.Call(1); got != 101 {
		t.Errorf("got %d, want 101", got)
	}
	a.Set(nil)
	if !a.IsEmpty() {
		t.Error("Set(nil) should empty the wrapper")
	}
}

func TestCloneOfEmpty(t *testing.T) {
	if !Empty[int, int]().Clone().IsEmpty() {
		t.Error("clone of empty should be empty")
	}
}

func TestRelease(t *testing.T) {
	a := Of(func(x int) int { return x })
	a.Release()
	if !a.IsEmpty() || a.Call(3) != 0 {
		t.Error("released wrapper should behave as empty")
	}
}

type doubler struct{ calls *int }

func (d doubler) Invoke(x int) int { *d.calls++; return 2 * x }

func (d doubler) Clone() Functor[int, int] {
	n := *d.calls
	return doubler{calls: &n}
}

func TestFromFunctor(t *testing.T) {
	calls := 0
	f := FromFunctor[int, int](doubler{calls: &calls})
	f.Call(1)

	var h Func[int, int]
	h.SetFunctor(doubler{calls: &calls})
	h.Call(1)
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}

	g := f.Clone()
	if got := g.Call(21); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if calls != 2 {
		t.Errorf("clone shared the call counter: %d", calls)
	}
}

func TestAction(t *testing.T) {
	var seen []string
	a := Action(func(s string) { seen = append(seen, s) })
	a.Call("x")
	a.Clone().Call("y")
	if len(seen) != 2 || seen[1] != "y" {
		t.Errorf("seen = %v", seen)
	}
}

func TestMessageClonesState(t *testing.T) {
	f := Message(wrapperspb.Int64(0), func(m *wrapperspb.Int64Value, d int64) int64 {
		m.Value += d
		return m.Value
	})
	f.Call(3)

	g := f.Clone()
	g.Call(10)
	if got := f.Call(0); got != 3 {
		t.Errorf("original = %d, want 3", got)
	}
	if got := g.Call(0); got != 13 {
		t.Errorf("copy = %d, want 13", got)
	}
}
