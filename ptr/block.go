package ptr

import (
	"refkit/infra/memory"
	"refkit/infra/sequence"
)

// block is the detached control block shared by all aliases of a value.
type block struct {
	id uint64
	n  int
}

var (
	blocks   = memory.NewPool(func() *block { return &block{} })
	blockIDs = sequence.New(0)
)

func newBlock() *block {
	b := blocks.Get()
	b.id = blockIDs.Next()
	b.n = 1
	return b
}

func freeBlock(b *block) {
	*b = block{}
	blocks.Put(b)
}
