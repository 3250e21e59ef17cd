// Package metrics publishes pool bookkeeping as Prometheus metrics.
// Each pool worth monitoring gets its own Collector, labeled by pool name;
// callers feed it Stats snapshots at whatever cadence suits them, typically
// from a ticker or alongside existing scrape handlers.
//
// Example:
//
//	p := nodepool.New[bytes.Buffer](64, 16)
//	c := metrics.NewCollector("render_buffers")
//
//	// After a burst of work:
//	c.Observe(p.Stats())
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ajitpratap0/nodepool/pkg/nodepool"
)

var (
	// PoolNodes tracks the total number of nodes allocated per pool.
	PoolNodes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nodepool_nodes",
			Help: "Total number of nodes currently allocated by the pool",
		},
		[]string{"pool"},
	)

	// PoolNodesInUse tracks nodes currently checked out per pool.
	PoolNodesInUse = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nodepool_nodes_in_use",
			Help: "Number of pool nodes currently checked out",
		},
		[]string{"pool"},
	)

	// PoolNodesAvailable tracks nodes ready to be acquired per pool.
	PoolNodesAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nodepool_nodes_available",
			Help: "Number of pool nodes available for acquisition",
		},
		[]string{"pool"},
	)

	// PoolGrowths counts growth events per pool. A steadily climbing value
	// means the pool's initial size or increment is undersized for the
	// workload.
	PoolGrowths = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nodepool_growths_total",
			Help: "Total number of pool growth events",
		},
		[]string{"pool"},
	)
)

// Collector publishes Stats snapshots for one named pool. It remembers the
// last observed growth count so the cumulative counter only advances by the
// delta between observations. Not safe for concurrent use, matching the
// pool it observes.
type Collector struct {
	pool        string
	lastGrowths uint64
}

// NewCollector creates a collector for the pool identified by name. The
// name becomes the "pool" label on every metric.
func NewCollector(name string) *Collector {
	return &Collector{pool: name}
}

// Observe publishes a stats snapshot to the Prometheus metrics.
func (c *Collector) Observe(s nodepool.Stats) {
	PoolNodes.WithLabelValues(c.pool).Set(float64(s.Nodes))
	PoolNodesInUse.WithLabelValues(c.pool).Set(float64(s.InUse))
	PoolNodesAvailable.WithLabelValues(c.pool).Set(float64(s.Available))

	if d := s.Growths - c.lastGrowths; d > 0 {
		PoolGrowths.WithLabelValues(c.pool).Add(float64(d))
		c.lastGrowths = s.Growths
	}
}
