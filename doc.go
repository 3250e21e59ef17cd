// Package nodepool is a small library for fixed-growth object pooling.
//
// The core lives in pkg/nodepool: a Pool[T] that pre-allocates node slots
// for expensive-to-construct values, tracks which are in use, grows on
// demand, and supports O(1) acquire, release and point-removal through a
// partitioned, arena-indexed linked list.
//
// Supporting packages:
//
//   - pkg/errors: structured, typed errors used by config validation
//   - pkg/config: YAML/JSON config file loading with ${ENV} substitution
//   - pkg/metrics: Prometheus collectors for pool bookkeeping
//
// Quick start:
//
//	import "github.com/ajitpratap0/nodepool/pkg/nodepool"
//
//	p := nodepool.New[MyExpensiveThing](32, 8)
//
//	n := p.Acquire()
//	defer n.Release()
//	use(&n.Value)
package nodepool
