// Package nodepool implements a fixed-growth object pool for
// expensive-to-construct values. The pool pre-allocates a set of node slots,
// hands them out with Acquire, takes them back with Release, and grows by a
// configured increment whenever it runs dry, so an Acquire never fails.
//
// # Structure
//
// Every node lives on a doubly linked list owned by the pool. Traversed head
// to tail the list is always partitioned: a contiguous run of available
// nodes, then a contiguous run of in-use nodes ordered oldest-acquired to
// newest. Acquire takes the head and moves it to the tail; Release moves a
// node back to the head. Because the partition boundary is always adjacent
// to head or tail, both operations are O(1), as is point-removal of an
// arbitrary node.
//
// List links are stable indices into an internal arena rather than node
// pointers, so splices are plain index assignments and removed nodes can
// never leave a dangling reference inside the list.
//
// # Reuse semantics
//
// A released node keeps its payload. The next acquirer receives the most
// recently released node first (LIFO bias), which means previously
// constructed state is still warm and can often be reused outright instead
// of rebuilt. Payloads are only zeroed when a node is permanently removed
// via Remove or Clear.
//
// # Usage
//
//	p := nodepool.New[bytes.Buffer](16, 4)
//
//	n := p.Acquire()
//	n.Value.WriteString("hello")
//	// ... use the buffer ...
//	n.Release()
//
// The pool is not safe for concurrent use; wrap it in a mutex or confine it
// to one goroutine if it must be shared.
package nodepool
