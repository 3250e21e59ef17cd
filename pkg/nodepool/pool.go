package nodepool

import (
	"go.uber.org/zap"
)

// Default sizing applied when construction inputs are non-positive.
const (
	// DefaultInitialSize is the node count used when the requested initial
	// size is less than 1.
	DefaultInitialSize = 5

	// DefaultIncrement is the minimum growth step. Increments are clamped to
	// this value so an acquire on a saturated pool always produces at least
	// one fresh node.
	DefaultIncrement = 1
)

// Pool is a fixed-growth object pool. It pre-allocates nodes for
// expensive-to-construct values, hands them out via Acquire, and takes them
// back via Release, growing by a configured increment when exhausted.
//
// Internally the pool keeps its nodes on a doubly linked list backed by an
// arena of stable indices. Traversed head to tail, the list is always a
// contiguous run of available nodes followed by a contiguous run of in-use
// nodes, ordered oldest-acquired to newest. Both partition boundaries sit
// next to head or tail, which is what makes Acquire, Release and Remove all
// O(1).
//
// The pool is not safe for concurrent use. Callers that share a pool across
// goroutines must provide their own synchronization or confine the pool to a
// single owning goroutine.
type Pool[T any] struct {
	// arena holds every node ever allocated, addressed by Node.index.
	// Removed slots are nil and their indices sit on the free list until
	// growth recycles them.
	arena []*Node[T]
	free  []int32

	head int32
	tail int32

	inUse     int
	increment int
	growths   uint64

	log *zap.Logger
}

// New creates a pool with initialSize pre-allocated nodes, all available.
// An initialSize below 1 falls back to DefaultInitialSize, and an
// incrementSize below 1 is clamped to DefaultIncrement; both are applied
// silently. Use Config.Validate and NewFromConfig to surface bad sizing as
// an error instead.
//
// Construction cost is O(initialSize).
func New[T any](initialSize, incrementSize int, opts ...Option[T]) *Pool[T] {
	if initialSize < 1 {
		initialSize = DefaultInitialSize
	}
	if incrementSize < 1 {
		incrementSize = DefaultIncrement
	}

	p := &Pool[T]{
		head:      none,
		tail:      none,
		increment: incrementSize,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.grow(initialSize)
	return p
}

// Grow adds n available nodes to the pool. The new nodes are pushed at the
// head of the list, ahead of any previously available nodes, so they are the
// next ones handed out. Non-positive n is a no-op. O(n).
func (p *Pool[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	p.grow(n)
	p.growths++
	p.log.Debug("pool grown",
		zap.Int("added", n),
		zap.Int("nodes", p.Len()),
		zap.Int("in_use", p.inUse))
}

func (p *Pool[T]) grow(n int) {
	for i := 0; i < n; i++ {
		p.pushHead(p.alloc())
	}
}

// alloc creates a fresh unlinked node, recycling a vacated arena slot when
// one is available.
func (p *Pool[T]) alloc() *Node[T] {
	if k := len(p.free); k > 0 {
		idx := p.free[k-1]
		p.free = p.free[:k-1]
		node := &Node[T]{pool: p, index: idx, next: none, prev: none}
		p.arena[idx] = node
		return node
	}
	node := &Node[T]{pool: p, index: int32(len(p.arena)), next: none, prev: none}
	p.arena = append(p.arena, node)
	return node
}

// Acquire returns an available node, marked in-use and moved to the tail of
// the list. If every node is already in use, the pool first grows by its
// increment, so Acquire never fails. O(1) amortized; the occasional growth
// step costs O(increment).
//
// The returned node's payload is whatever the previous user left in it;
// callers needing a clean slot must reset Value themselves.
func (p *Pool[T]) Acquire() *Node[T] {
	if p.head == none || p.arena[p.head].inUse {
		// Saturated: every node is in use. The increment is clamped >= 1 at
		// construction and mutation, so growth always yields a fresh head.
		p.Grow(p.increment)
	}

	n := p.arena[p.head]
	p.detach(n)
	n.inUse = true
	p.inUse++
	p.pushTail(n)
	return n
}

// Release returns a node to the available end of the pool. It reports false
// and leaves everything untouched when the node does not belong to this
// pool. Releasing a node that is already available is an idempotent success.
//
// Released nodes go to the head of the list, so the most recently released
// node is the next one acquired. Payloads are not cleared on release. O(1).
func (p *Pool[T]) Release(n *Node[T]) bool {
	if n == nil || n.pool != p {
		return false
	}
	if !n.inUse {
		return true
	}

	p.detach(n)
	n.inUse = false
	p.inUse--
	p.pushHead(n)
	return true
}

// Remove permanently evicts a node from the pool, whatever its use state.
// It reports false and changes nothing when the node does not belong to
// this pool. The node's payload, links and back-reference are cleared and
// its arena slot is recycled by future growth; the node handle itself is no
// longer usable with any pool. O(1).
//
// Removing an in-use node decrements the in-use count along with the node
// count, so Len, InUse and Available stay consistent.
func (p *Pool[T]) Remove(n *Node[T]) bool {
	if n == nil || n.pool != p {
		return false
	}

	p.detach(n)
	if n.inUse {
		p.inUse--
	}
	p.arena[n.index] = nil
	p.free = append(p.free, n.index)
	n.reset()
	return true
}

// Nodes returns a snapshot of every node in list order: available nodes
// first, then in-use nodes from oldest to newest acquisition. Mutating the
// returned slice has no effect on the pool. O(n).
func (p *Pool[T]) Nodes() []*Node[T] {
	out := make([]*Node[T], 0, p.Len())
	for i := p.head; i != none; i = p.arena[i].next {
		out = append(out, p.arena[i])
	}
	return out
}

// Clear evicts every node and resets the pool to empty. All node handles
// are cleared the same way Remove clears them and must not be reused. The
// in-use count resets to zero together with the node count.
func (p *Pool[T]) Clear() {
	for i := p.head; i != none; {
		n := p.arena[i]
		i = n.next
		n.reset()
	}
	p.arena = p.arena[:0]
	p.free = p.free[:0]
	p.head = none
	p.tail = none
	p.inUse = 0
	p.log.Debug("pool cleared")
}

// Len returns the total number of nodes currently allocated by the pool.
func (p *Pool[T]) Len() int {
	return len(p.arena) - len(p.free)
}

// InUse returns the number of nodes currently checked out.
func (p *Pool[T]) InUse() int {
	return p.inUse
}

// Available returns the number of nodes ready to be acquired.
func (p *Pool[T]) Available() int {
	return p.Len() - p.inUse
}

// Increment returns the number of nodes added per growth event.
func (p *Pool[T]) Increment() int {
	return p.increment
}

// SetIncrement sets the growth step, clamping values below 1 to
// DefaultIncrement. A zero increment is never accepted: it would make a
// saturated Acquire grow by nothing and then hand out an in-use node.
func (p *Pool[T]) SetIncrement(n int) {
	if n < 1 {
		n = DefaultIncrement
	}
	p.increment = n
}

// pushHead links an unlinked node in at the head of the list.
func (p *Pool[T]) pushHead(n *Node[T]) {
	n.prev = none
	n.next = p.head
	if p.head != none {
		p.arena[p.head].prev = n.index
	} else {
		p.tail = n.index
	}
	p.head = n.index
}

// pushTail links an unlinked node in at the tail of the list.
func (p *Pool[T]) pushTail(n *Node[T]) {
	n.next = none
	n.prev = p.tail
	if p.tail != none {
		p.arena[p.tail].next = n.index
	} else {
		p.head = n.index
	}
	p.tail = n.index
}

// detach unlinks a node from its current position, handling head, tail,
// interior and sole-node cases. Detaching the only node leaves both head
// and tail empty.
func (p *Pool[T]) detach(n *Node[T]) {
	if n.prev != none {
		p.arena[n.prev].next = n.next
	} else {
		p.head = n.next
	}
	if n.next != none {
		p.arena[n.next].prev = n.prev
	} else {
		p.tail = n.prev
	}
	n.next = none
	n.prev = none
}
