package nodepool

// none marks the absence of a neighbor in the arena-indexed list.
const none int32 = -1

// Node is a handle to a single pool slot. Nodes are created only by their
// pool, during construction or growth, and stay alive for the lifetime of
// the pool unless explicitly removed.
//
// The Value field holds the caller's payload. It defaults to the zero value
// of T and is deliberately NOT cleared when the node is released back to the
// pool, so a caller re-acquiring a recently released node can reuse previous
// construction work. The payload is only zeroed when the node is permanently
// removed from the pool.
//
// Callers must not retain references into Value past a release: a released
// node may be handed to another acquirer at any time.
type Node[T any] struct {
	// Value is the pooled payload slot.
	Value T

	// pool is a non-owning back-reference used for identity checks in
	// Release and Remove. It is nil once the node has been removed.
	pool *Pool[T]

	// index is the node's stable position in the pool arena. List links are
	// arena indices rather than node pointers, so splices are index
	// assignments and a removed node can never dangle into the list.
	index int32
	next  int32
	prev  int32

	inUse bool
}

// InUse reports whether the node is currently checked out of the pool.
func (n *Node[T]) InUse() bool {
	return n.inUse
}

// Pool returns the pool that owns this node, or nil if the node has been
// removed and no longer belongs to any pool.
func (n *Node[T]) Pool() *Pool[T] {
	return n.pool
}

// Release returns the node to its owning pool. It is a convenience for
// n.Pool().Release(n) and is a no-op when the node has no owning pool,
// which makes it safe to call on removed nodes.
func (n *Node[T]) Release() {
	if n.pool == nil {
		return
	}
	n.pool.Release(n)
}

// reset permanently detaches the node from pool bookkeeping: the payload is
// zeroed, the back-reference and list links are cleared, and the node is no
// longer usable with any pool.
func (n *Node[T]) reset() {
	var zero T
	n.Value = zero
	n.pool = nil
	n.index = none
	n.next = none
	n.prev = none
	n.inUse = false
}
