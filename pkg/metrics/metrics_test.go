package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/nodepool/pkg/nodepool"
)

func TestCollector_Observe(t *testing.T) {
	p := nodepool.New[int](3, 2)
	c := NewCollector("observe_test")

	p.Acquire()
	p.Acquire()
	c.Observe(p.Stats())

	assert.Equal(t, 3.0, testutil.ToFloat64(PoolNodes.WithLabelValues("observe_test")))
	assert.Equal(t, 2.0, testutil.ToFloat64(PoolNodesInUse.WithLabelValues("observe_test")))
	assert.Equal(t, 1.0, testutil.ToFloat64(PoolNodesAvailable.WithLabelValues("observe_test")))
	assert.Equal(t, 0.0, testutil.ToFloat64(PoolGrowths.WithLabelValues("observe_test")))
}

func TestCollector_GrowthDelta(t *testing.T) {
	p := nodepool.New[int](1, 1)
	c := NewCollector("growth_test")

	// Saturate and force two growth events.
	p.Acquire()
	p.Acquire()
	p.Acquire()
	require.Equal(t, uint64(2), p.Stats().Growths)

	c.Observe(p.Stats())
	assert.Equal(t, 2.0, testutil.ToFloat64(PoolGrowths.WithLabelValues("growth_test")))

	// Re-observing without new growth must not advance the counter.
	c.Observe(p.Stats())
	assert.Equal(t, 2.0, testutil.ToFloat64(PoolGrowths.WithLabelValues("growth_test")))

	p.Acquire()
	c.Observe(p.Stats())
	assert.Equal(t, 3.0, testutil.ToFloat64(PoolGrowths.WithLabelValues("growth_test")))
}

func TestCollector_TracksClear(t *testing.T) {
	p := nodepool.New[int](4, 1)
	c := NewCollector("clear_test")

	p.Acquire()
	c.Observe(p.Stats())

	p.Clear()
	c.Observe(p.Stats())

	assert.Equal(t, 0.0, testutil.ToFloat64(PoolNodes.WithLabelValues("clear_test")))
	assert.Equal(t, 0.0, testutil.ToFloat64(PoolNodesInUse.WithLabelValues("clear_test")))
}
