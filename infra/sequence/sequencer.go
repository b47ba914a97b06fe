package sequence

import "sync/atomic"

// Sequencer hands out strictly increasing identifiers.
// Control blocks are stamped with one so that log lines for the
// allocation and the final release of a value can be matched up.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer whose first Next returns start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next identifier.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last identifier handed out.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}
