package nodepool

// Stats is a point-in-time snapshot of pool bookkeeping, suitable for
// logging, JSON export, or feeding a metrics collector.
type Stats struct {
	// Nodes is the total number of nodes currently allocated.
	Nodes int `json:"nodes"`
	// InUse is the number of nodes currently checked out.
	InUse int `json:"in_use"`
	// Available is the number of nodes ready to be acquired.
	Available int `json:"available"`
	// Growths counts growth events since construction, both explicit Grow
	// calls and growth triggered by a saturated Acquire. The initial
	// allocation is not counted.
	Growths uint64 `json:"growths"`
}

// Stats returns a snapshot of the pool's current counts.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Nodes:     p.Len(),
		InUse:     p.inUse,
		Available: p.Available(),
		Growths:   p.growths,
	}
}
